package seats

// LayoutRequest generates the seat map of one show date
type LayoutRequest struct {
	Date     string          `json:"date" binding:"required"`
	Replace  bool            `json:"replace"`
	Sections []SectionLayout `json:"sections" binding:"required,min=1,dive"`
}

// SectionLayout describes a block of rows sharing a category and price.
// Price falls back to the tier price setting when omitted.
type SectionLayout struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Category    string   `json:"category" binding:"required,oneof=VVIP VIP Royal Diamond Platinum Gold Silver Bronze"`
	Rows        []string `json:"rows" binding:"required,min=1,dive,required,alphanum,max=16"`
	SeatsPerRow int      `json:"seatsPerRow" binding:"required,min=1,max=200"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
}

type MarkBookedRequest struct {
	Date    string   `json:"date" binding:"required"`
	SeatIDs []string `json:"seatIds" binding:"required,min=1,dive,required"`
	Booked  *bool    `json:"booked"`
}

type SeatMapQuery struct {
	Date string `form:"date" binding:"required"`
}
