package department

import "time"

// Member is the roster view of an employee inside a department listing.
type Member struct {
	EmployeeID uint
	FirstName  string
	LastName   string
	JobTitle   string
}

// Leadership is one time-bounded record of an employee leading a
// department. Ending a leadership sets EndDate; records are never deleted.
type Leadership struct {
	EmployeeID   uint
	DepartmentID uint
	StartDate    time.Time
	EndDate      *time.Time
}

// Active reports whether the record makes its employee a current leader at
// the given time: started, and either open-ended or ending today or later.
func (l Leadership) Active(now time.Time) bool {
	if l.StartDate.IsZero() || l.StartDate.After(now) {
		return false
	}
	if l.EndDate == nil {
		return true
	}
	// Calendar-date comparison, so the predicate agrees with the store's
	// end_date >= CURRENT_DATE no matter which location now carries.
	endY, endM, endD := l.EndDate.Date()
	nowY, nowM, nowD := now.Date()
	end := time.Date(endY, endM, endD, 0, 0, 0, 0, time.UTC)
	today := time.Date(nowY, nowM, nowD, 0, 0, 0, 0, time.UTC)
	return !end.Before(today)
}

type Option func(d *departmentImpl)

func WithEmployees(employees []Member) Option {
	return func(d *departmentImpl) {
		d.employees = employees
	}
}

func WithLeaders(leaders []Member) Option {
	return func(d *departmentImpl) {
		d.leaders = leaders
	}
}

// Department is a read model: the roster plus the currently active leader
// subset. Leadership is additive metadata over the roster, so every leader
// also appears among the employees.
type Department interface {
	ID() uint
	Name() Name
	Employees() []Member
	Leaders() []Member
}

func New(id uint, name Name, opts ...Option) Department {
	d := &departmentImpl{
		id:   id,
		name: name,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type departmentImpl struct {
	id        uint
	name      Name
	employees []Member
	leaders   []Member
}

func (d *departmentImpl) ID() uint {
	return d.id
}

func (d *departmentImpl) Name() Name {
	return d.name
}

func (d *departmentImpl) Employees() []Member {
	return d.employees
}

func (d *departmentImpl) Leaders() []Member {
	return d.leaders
}
