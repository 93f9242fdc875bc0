package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/models"
	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
	"github.com/noah-isme/college-admin-api/pkg/export"
)

type lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// ExportSources supplies the listings that can be exported. Nil sources are
// reported as unknown resources.
type ExportSources struct {
	Departments lister[models.Department]
	Teachers    lister[models.TeacherListing]
	Students    lister[models.StudentListing]
	Courses     lister[models.CourseListing]
	Enrollments lister[models.EnrollmentListing]
	Payments    lister[models.PaymentListing]
	Books       lister[models.BookListing]
	Authors     lister[models.AuthorListing]
	Emails      lister[models.StudentEmailListing]
	Phones      lister[models.StudentPhoneListing]
}

// ExportFile is a rendered listing.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type exportSource struct {
	title string
	load  func(ctx context.Context) (export.Dataset, error)
}

// ExportService renders resource listings as CSV or PDF files.
type ExportService struct {
	sources map[string]exportSource
	now     func() time.Time
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(src ExportSources, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	sources := make(map[string]exportSource)
	register(sources, "departments", "Departments", src.Departments, []string{"DepartmentID", "DName", "Location"},
		func(d models.Department) []string {
			return []string{strconv.Itoa(d.DepartmentID), text(d.DName), text(d.Location)}
		})
	register(sources, "teachers", "Teachers", src.Teachers, []string{"TeacherSSN", "TName", "Qualifications", "Phone", "Email", "Hire_date", "DepartmentName"},
		func(t models.TeacherListing) []string {
			return []string{t.TeacherSSN, text(t.TName), text(t.Qualifications), text(t.Phone), text(t.Email), text(t.HireDate), text(t.DepartmentName)}
		})
	register(sources, "students", "Students", src.Students, []string{"StudentSSN", "SName", "BOD", "Gender", "TeacherName"},
		func(s models.StudentListing) []string {
			return []string{s.StudentSSN, text(s.SName), text(s.BOD), text(s.Gender), text(s.TeacherName)}
		})
	register(sources, "courses", "Courses", src.Courses, []string{"Course_ID", "CName", "Credit_hours", "DepartmentName", "TeacherName"},
		func(c models.CourseListing) []string {
			return []string{strconv.Itoa(c.CourseID), text(c.CName), number(c.CreditHours), text(c.DepartmentName), text(c.TeacherName)}
		})
	register(sources, "enrollments", "Enrollments", src.Enrollments, []string{"StudentSSN", "StudentName", "CourseID", "CourseName", "EnrollmentDate", "Grade"},
		func(e models.EnrollmentListing) []string {
			return []string{e.StudentSSN, text(e.StudentName), strconv.Itoa(e.CourseID), text(e.CourseName), text(e.EnrollmentDate), e.GradeLabel()}
		})
	register(sources, "payments", "Payments", src.Payments, []string{"PaymentID", "Date", "Amount", "StudentSSN", "StudentName"},
		func(p models.PaymentListing) []string {
			return []string{strconv.Itoa(p.PaymentID), text(p.Date), money(p.Amount), text(p.StudentSSN), text(p.StudentName)}
		})
	register(sources, "books", "Books", src.Books, []string{"BookID", "Title", "PublishYear", "CourseName"},
		func(b models.BookListing) []string {
			return []string{strconv.Itoa(b.BookID), text(b.Title), number(b.PublishYear), text(b.CourseName)}
		})
	register(sources, "authors", "Authors", src.Authors, []string{"AuthorName", "BookID", "BookTitle"},
		func(a models.AuthorListing) []string {
			return []string{a.AuthorName, strconv.Itoa(a.BookID), text(a.BookTitle)}
		})
	register(sources, "emails", "Student Emails", src.Emails, []string{"Email", "StudentSSN", "StudentName"},
		func(e models.StudentEmailListing) []string {
			return []string{e.Email, e.StudentSSN, text(e.StudentName)}
		})
	register(sources, "phones", "Student Phones", src.Phones, []string{"PhoneNum", "StudentSSN", "StudentName"},
		func(p models.StudentPhoneListing) []string {
			return []string{p.PhoneNum, p.StudentSSN, text(p.StudentName)}
		})
	return &ExportService{sources: sources, now: time.Now, logger: logger}
}

func register[T any](sources map[string]exportSource, name, title string, src lister[T], headers []string, row func(T) []string) {
	if src == nil {
		return
	}
	sources[name] = exportSource{
		title: title,
		load: func(ctx context.Context) (export.Dataset, error) {
			items, err := src.List(ctx)
			if err != nil {
				return export.Dataset{}, err
			}
			rows := make([]map[string]string, 0, len(items))
			for _, item := range items {
				values := row(item)
				record := make(map[string]string, len(headers))
				for i, h := range headers {
					record[h] = values[i]
				}
				rows = append(rows, record)
			}
			return export.Dataset{Headers: headers, Rows: rows}, nil
		},
	}
}

// Export renders the listing of resource in the requested format.
func (s *ExportService) Export(ctx context.Context, resource, rawFormat string) (*ExportFile, error) {
	src, ok := s.sources[strings.ToLower(resource)]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Unknown export resource %q", resource))
	}
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid export format")
	}

	failed := fmt.Sprintf("Failed to export %s", strings.ToLower(resource))
	data, err := src.load(ctx)
	if err != nil {
		s.logger.Error("export listing failed",
			zap.String("resource", resource),
			zap.String("kind", appErrors.KindOf(err).String()),
			zap.Error(err),
		)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, failed)
	}
	content, err := export.RendererFor(format).Render(data, src.title)
	if err != nil {
		s.logger.Error("export render failed", zap.String("resource", resource), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, failed)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", strings.ToLower(resource), s.now().Format("20060102"), format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

// Resources lists the exportable resource names.
func (s *ExportService) Resources() []string {
	names := make([]string, 0, len(s.sources))
	for name := range s.sources {
		names = append(names, name)
	}
	return names
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func number(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func money(v *float64) string {
	if v == nil {
		return ""
	}
	return humanize.FormatFloat("#,###.##", *v)
}
