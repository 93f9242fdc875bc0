package models

// Book is a course textbook.
type Book struct {
	BookID      int     `db:"book_id" json:"BookID"`
	Title       *string `db:"title" json:"Title" validate:"omitempty,max=200"`
	PublishYear *int    `db:"publish_year" json:"PublishYear"`
	CourseID    *int    `db:"course_id" json:"CourseID"`
}

// BookListing adds the course name.
type BookListing struct {
	Book
	CourseName *string `db:"course_name" json:"CourseName"`
}

// Author links a writer to a book. Both fields form the key.
type Author struct {
	AuthorName string `db:"author_name" json:"AuthorName" validate:"required,max=100"`
	BookID     int    `db:"book_id" json:"BookID"`
}

// AuthorListing adds the book title.
type AuthorListing struct {
	Author
	BookTitle *string `db:"book_title" json:"BookTitle"`
}
