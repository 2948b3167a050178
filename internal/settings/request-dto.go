package settings

// ValueRequest carries a setting value of any JSON type; it is stored as text
type ValueRequest struct {
	Value interface{} `json:"value" binding:"required"`
}

type keyParam struct {
	Key string `validate:"required,alphanum,max=64"`
}
