package models

// Weekday identifies a day in a weekly course schedule.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// ScheduleBlock is a weekly meeting slot. Times are "HH:MM" 24h strings.
// Overlap between blocks is not validated here.
type ScheduleBlock struct {
	Day       Weekday `json:"day"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Location  *string `json:"location,omitempty"`
}

// Course represents a tracked academic course.
type Course struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Color       string          `json:"color"`
	TargetGrade float64         `json:"target_grade"`
	Credits     int             `json:"credits"`
	Term        *string         `json:"term,omitempty"`
	Schedule    []ScheduleBlock `json:"schedule,omitempty"`
}

// CoursePatch carries partial course updates; nil fields are left untouched.
type CoursePatch struct {
	Name        *string          `json:"name,omitempty"`
	Code        *string          `json:"code,omitempty"`
	Color       *string          `json:"color,omitempty"`
	TargetGrade *float64         `json:"target_grade,omitempty"`
	Credits     *int             `json:"credits,omitempty"`
	Term        *string          `json:"term,omitempty"`
	Schedule    *[]ScheduleBlock `json:"schedule,omitempty"`
}

// ApplyPatch returns a copy of the course with non-nil patch fields merged in.
func (c Course) ApplyPatch(p CoursePatch) Course {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Code != nil {
		c.Code = *p.Code
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.TargetGrade != nil {
		c.TargetGrade = *p.TargetGrade
	}
	if p.Credits != nil {
		c.Credits = *p.Credits
	}
	if p.Term != nil {
		c.Term = p.Term
	}
	if p.Schedule != nil {
		c.Schedule = cloneSchedule(*p.Schedule)
	}
	return c
}

// Clone returns a deep copy of the course.
func (c Course) Clone() Course {
	out := c
	out.Term = clonePtr(c.Term)
	out.Schedule = cloneSchedule(c.Schedule)
	return out
}

func cloneSchedule(blocks []ScheduleBlock) []ScheduleBlock {
	if blocks == nil {
		return nil
	}
	out := make([]ScheduleBlock, len(blocks))
	for i, b := range blocks {
		out[i] = b
		out[i].Location = clonePtr(b.Location)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
