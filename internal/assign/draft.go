// Package assign holds the users and courses picked in the admin panel and
// assigns every picked course to every picked user.
package assign

import "eduadmin/internal/domain"

// Draft is the pending assignment: the users and courses saved from the
// transfer dialogs
type Draft struct {
	Users   []domain.Profile
	Courses []domain.Course
}

// SetUsers replaces the drafted users
func (d *Draft) SetUsers(users []domain.Profile) {
	d.Users = append([]domain.Profile(nil), users...)
}

// SetCourses replaces the drafted courses
func (d *Draft) SetCourses(courses []domain.Course) {
	d.Courses = append([]domain.Course(nil), courses...)
}

// RemoveUser drops a profile by id
func (d *Draft) RemoveUser(id int) bool {
	for i, p := range d.Users {
		if p.ID == id {
			d.Users = append(d.Users[:i:i], d.Users[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveCourse drops a course by id
func (d *Draft) RemoveCourse(id int) bool {
	for i, c := range d.Courses {
		if c.ID == id {
			d.Courses = append(d.Courses[:i:i], d.Courses[i+1:]...)
			return true
		}
	}
	return false
}

// Total is the number of (user, course) pairs an assignment would submit
func (d *Draft) Total() int {
	return len(d.Users) * len(d.Courses)
}

// Ready reports whether at least one user and one course are drafted
func (d *Draft) Ready() bool {
	return d.Total() > 0
}

func (d *Draft) Clear() {
	d.Users = nil
	d.Courses = nil
}
