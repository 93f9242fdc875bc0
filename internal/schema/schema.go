// Package schema holds the college relational model: table DDL in
// foreign-key order and the entity names used by the statistics query.
package schema

// Table is one provisionable table.
type Table struct {
	// Name is reported back to setup callers.
	Name string
	DDL  string
}

// StudentTable is assumed to exist before provisioning runs. Operators and
// tests create it explicitly.
var StudentTable = Table{
	Name: "Student",
	DDL: `CREATE TABLE IF NOT EXISTS student (
	student_ssn VARCHAR(20) PRIMARY KEY,
	sname VARCHAR(100) NOT NULL,
	bod DATE,
	gender CHAR(1) CHECK (gender IN ('M', 'F')),
	teacher_ssn VARCHAR(20) REFERENCES teacher(teacher_ssn)
)`,
}

// Provisioned lists the tables created by setup, parents before children.
func Provisioned() []Table {
	return []Table{
		{
			Name: "Department",
			DDL: `CREATE TABLE IF NOT EXISTS department (
	department_id INT PRIMARY KEY,
	dname VARCHAR(100) NOT NULL,
	location VARCHAR(100)
)`,
		},
		{
			Name: "Teacher",
			DDL: `CREATE TABLE IF NOT EXISTS teacher (
	teacher_ssn VARCHAR(20) PRIMARY KEY,
	tname VARCHAR(100) NOT NULL,
	qualifications VARCHAR(200),
	phone VARCHAR(20),
	email VARCHAR(100),
	hire_date DATE,
	department_id INT REFERENCES department(department_id)
)`,
		},
		{
			Name: "Course",
			DDL: `CREATE TABLE IF NOT EXISTS course (
	course_id INT PRIMARY KEY,
	cname VARCHAR(100) NOT NULL,
	credit_hours INT,
	department_id INT REFERENCES department(department_id),
	teacher_ssn VARCHAR(20) REFERENCES teacher(teacher_ssn)
)`,
		},
		{
			Name: "Enrolled",
			DDL: `CREATE TABLE IF NOT EXISTS enrolled (
	student_ssn VARCHAR(20) REFERENCES student(student_ssn),
	course_id INT REFERENCES course(course_id),
	enrollment_date DATE,
	grade VARCHAR(5),
	PRIMARY KEY (student_ssn, course_id)
)`,
		},
		{
			Name: "Payment",
			DDL: `CREATE TABLE IF NOT EXISTS payment (
	payment_id INT PRIMARY KEY,
	payment_date DATE,
	amount NUMERIC(10, 2),
	student_ssn VARCHAR(20) REFERENCES student(student_ssn)
)`,
		},
		{
			Name: "Book",
			DDL: `CREATE TABLE IF NOT EXISTS book (
	book_id INT PRIMARY KEY,
	title VARCHAR(200) NOT NULL,
	publish_year INT,
	course_id INT REFERENCES course(course_id)
)`,
		},
		{
			Name: "Authors",
			DDL: `CREATE TABLE IF NOT EXISTS authors (
	author_name VARCHAR(100),
	book_id INT REFERENCES book(book_id),
	PRIMARY KEY (author_name, book_id)
)`,
		},
		{
			Name: "Emails",
			DDL: `CREATE TABLE IF NOT EXISTS emails (
	email VARCHAR(100),
	student_ssn VARCHAR(20) REFERENCES student(student_ssn),
	PRIMARY KEY (email, student_ssn)
)`,
		},
		{
			Name: "Phones",
			DDL: `CREATE TABLE IF NOT EXISTS phones (
	phone_num VARCHAR(20),
	student_ssn VARCHAR(20) REFERENCES student(student_ssn),
	PRIMARY KEY (phone_num, student_ssn)
)`,
		},
	}
}

// Counted maps stats keys to the tables they count.
var Counted = []struct {
	Key   string
	Table string
}{
	{"students", "student"},
	{"teachers", "teacher"},
	{"departments", "department"},
	{"courses", "course"},
	{"enrollments", "enrolled"},
	{"books", "book"},
}
