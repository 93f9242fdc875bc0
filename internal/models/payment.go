package models

// Payment is a tuition payment made by a student.
type Payment struct {
	PaymentID  int      `db:"payment_id" json:"PaymentID"`
	Date       *string  `db:"payment_date" json:"Date" validate:"omitempty,datetime=2006-01-02"`
	Amount     *float64 `db:"amount" json:"Amount"`
	StudentSSN *string  `db:"student_ssn" json:"StudentSSN" validate:"omitempty,max=20"`
}

// PaymentListing adds the paying student's name.
type PaymentListing struct {
	Payment
	StudentName *string `db:"student_name" json:"StudentName"`
}
