package models

// GradePending is displayed for enrollments without a grade.
const GradePending = "Pending"

// Enrollment is a row of the Enrolled relation, keyed by student and course.
type Enrollment struct {
	StudentSSN     string  `db:"student_ssn" json:"StudentSSN" validate:"required,max=20"`
	CourseID       int     `db:"course_id" json:"CourseID"`
	EnrollmentDate *string `db:"enrollment_date" json:"EnrollmentDate" validate:"omitempty,datetime=2006-01-02"`
	Grade          *string `db:"grade" json:"Grade" validate:"omitempty,max=5"`
}

// GradeLabel returns the grade or GradePending when none is recorded.
func (e Enrollment) GradeLabel() string {
	if e.Grade == nil || *e.Grade == "" {
		return GradePending
	}
	return *e.Grade
}

// EnrollmentKey identifies one enrollment.
type EnrollmentKey struct {
	StudentSSN string
	CourseID   int
}

// EnrollmentListing adds student and course names.
type EnrollmentListing struct {
	Enrollment
	StudentName *string `db:"student_name" json:"StudentName"`
	CourseName  *string `db:"course_name" json:"CourseName"`
}
