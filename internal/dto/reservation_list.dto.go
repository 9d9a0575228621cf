package dto

type ReservationListDTO struct {
	ID     uint   `json:"id"`
	Date   string `json:"date"`
	Hour   string `json:"hour"`
	Status string `json:"status"`

	WorkerDNI  string `json:"worker_dni"`
	WorkerName string `json:"worker_name"`

	ClientDNI  string `json:"client_dni"`
	ClientName string `json:"client_name"`

	ServiceName string  `json:"service_name"`
	Estimation  int     `json:"estimation"`
	Total       float64 `json:"total"`

	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}
