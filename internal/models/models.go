package models

// Doctor is a registered doctor account. Rows are created by registration and
// never updated or deleted.
type Doctor struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name" validate:"required"`
	Phone        string `json:"phone" db:"phone"`
	Username     string `json:"username" db:"username" validate:"required"`
	PasswordHash string `json:"password_hash,omitempty" db:"password_hash"`
	Created      int64  `json:"created" db:"created"`
}

// PatientQuery is a symptom query submitted by a patient to one doctor.
// QueryToken is a v4 UUID generated at submission and is the key replies
// reference; patients have no account, so Name doubles as their lookup key.
type PatientQuery struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Age        int    `json:"age" db:"age"`
	Symptoms   string `json:"symptoms" db:"symptoms"`
	DoctorID   int64  `json:"doctor_id" db:"doctor_id"`
	QueryToken string `json:"query_token" db:"query_token"`
	Created    int64  `json:"created" db:"created"`
}

// Reply is a doctor's answer to a query token. Multiple rows may share a
// token; read paths only ever surface the first-inserted one.
type Reply struct {
	ID         int64  `json:"id" db:"id"`
	QueryToken string `json:"query_token" db:"query_token"`
	ReplyText  string `json:"reply_text" db:"reply_text"`
	Created    int64  `json:"created" db:"created"`
}
