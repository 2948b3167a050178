package settings

// ValueResponse mirrors the shape the storefront reads: {"value": "..."}
type ValueResponse struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}
