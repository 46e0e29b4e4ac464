package models

// Well-known group names. Role checks derive from membership in these.
const (
	GroupCommercial = "commercial"
	GroupSupport    = "support"
)

// Group is a named role container. Users gain the commercial or support role
// by membership; users in neither group hold no role at all.
type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups" json:"-"`
}
