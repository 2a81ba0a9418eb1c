package dto

type BookingListDTO struct {
	ID            uint   `json:"id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	IsVerified    bool   `json:"is_verified"`
	ServiceTitle  string `json:"service_title"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}
