package models

const (
	CustomerTypeDomestic = "DOMESTIC"
	CustomerTypeForeign  = "FOREIGN"
)

type CustomerType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:50;default:'DOMESTIC'" json:"type"`
}
