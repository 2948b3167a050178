package settings

import "time"

// Well-known keys. Tier price keys come from pricing.SettingKey.
const (
	KeyCurrency       = "currency"
	KeyPlatformFee    = "platformFee"
	KeyTaxRate        = "taxRate"
	KeySupportEmail   = "supportEmail"
	KeySupportPhone   = "supportPhone"
	KeyWhatsAppNumber = "whatsappNumber"
)

type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null;size:64"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
