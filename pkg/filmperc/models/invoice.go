package models

// Invoice is one line of an invoice sheet.
type Invoice struct {
	// R is the sheet row the line was read from (1-based).
	R          int  `json:"r"`
	Percentage Cell `json:"frm_perc"`
	Title      Cell `json:"master_title_description"`
	NetRental  Cell `json:"net_rental"`
	PlayWeek   Cell `json:"play_week"`
}
