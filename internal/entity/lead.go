package entity

import (
	"strings"
	"time"
)

// Lead statuses used by the marketing funnel. The CRM accepts any string.
const (
	StatusLead       = "Lead"
	StatusHotLead    = "Hot_Lead"
	StatusClicker    = "Clicker"
	StatusSubscriber = "Subscriber"
)

// Contact attribute names as configured in the CRM.
const (
	AttrSource         = "SOURCE"
	AttrStatus         = "STATUS"
	AttrInterest       = "INTEREST"
	AttrSignupDate     = "SIGNUP_DATE"
	AttrSignupTime     = "SIGNUP_TIME"
	AttrLastActionDate = "LAST_ACTION_DATE"
)

const (
	DefaultSource = "brand_bridge"
	Interest      = "VR_Experience"

	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Lead is a prospective contact captured by the subscribe form.
type Lead struct {
	Email      string
	Source     string
	ListID     int64
	CapturedAt time.Time
}

// Attributes is the attribute map sent to the CRM on subscribe.
func (l Lead) Attributes() map[string]string {
	return map[string]string{
		AttrSource:     strings.ToUpper(l.Source),
		AttrStatus:     StatusLead,
		AttrInterest:   Interest,
		AttrSignupDate: l.CapturedAt.Format(dateLayout),
		AttrSignupTime: l.CapturedAt.Format(timeLayout),
	}
}

// StatusUpdate moves an existing contact along the funnel.
type StatusUpdate struct {
	Email    string
	Status   string
	ActionAt time.Time
}

// Attributes is the partial attribute map sent to the CRM on update.
func (u StatusUpdate) Attributes() map[string]string {
	return map[string]string{
		AttrStatus:         u.Status,
		AttrLastActionDate: u.ActionAt.Format(dateLayout),
	}
}
