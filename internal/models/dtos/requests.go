package dtos

// ReservationReq is the payload for creating or editing a reservation.
// Times are ISO-8601 instants; validation happens in the service layer.
type ReservationReq struct {
	AircraftID int64   `json:"aircraft_id"`
	Title      string  `json:"title"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Notes      *string `json:"notes"`
}

// CompleteReservationReq carries the hobbs meter readings recorded at
// completion. Pointers so missing fields are distinguishable from zero.
type CompleteReservationReq struct {
	StartHobbs *float64 `json:"start_hobbs"`
	EndHobbs   *float64 `json:"end_hobbs"`
}

type IssueReq struct {
	AircraftID  int64   `json:"aircraft_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Severity    string  `json:"severity"`
}

type IssueStatusReq struct {
	Status string `json:"status"`
}

type AircraftReq struct {
	TailNumber string   `json:"tail_number"`
	Make       string   `json:"make"`
	Model      string   `json:"model"`
	Year       *int     `json:"year"`
	LastHobbs  *float64 `json:"last_hobbs"`
}

type UserCreateReq struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Privileges string `json:"privileges"`
}

type UserUpdateReq struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Privileges string  `json:"privileges"`
	Password   *string `json:"password"`
}

type UserPrivilegesReq struct {
	Privileges string `json:"privileges"`
}
