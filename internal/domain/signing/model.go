package signing

import "time"

// Token authorises a signer to approve or reject a document by email link.
type Token struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Token       string     `gorm:"size:64;uniqueIndex;not null" json:"token"`
	DocumentID  uint       `gorm:"index;not null" json:"document_id"`
	SignerEmail string     `gorm:"size:255;index;not null" json:"signer_email"`
	SignerName  string     `gorm:"size:100" json:"signer_name"`
	ExpiresAt   time.Time  `json:"expires_at"`
	UsedAt      *time.Time `json:"used_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Token) TableName() string {
	return "signing_tokens"
}

func (t Token) Usable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
