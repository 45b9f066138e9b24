package assign

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"eduadmin/internal/api"
)

// ErrNothingToAssign is returned for a draft without users or courses
var ErrNothingToAssign = errors.New("select at least one user and one course")

// DefaultConcurrency bounds the number of in-flight subscribe requests
const DefaultConcurrency = 4

// Subscriber assigns one course to one user
type Subscriber interface {
	Subscribe(ctx context.Context, userID, courseID int) (api.SubscribeResult, error)
}

// Failure is one pair the portal did not accept
type Failure struct {
	UserID   int
	CourseID int
	Err      error
}

// Report counts the outcome of every submitted pair
type Report struct {
	Successful      int
	AlreadyAssigned int
	Failed          int
	Failures        []Failure
}

// Total is the number of pairs the report covers
func (r Report) Total() int {
	return r.Successful + r.AlreadyAssigned + r.Failed
}

// Summary renders the non-zero counts, e.g. "Assigned: 3. Failed: 1."
func (r Report) Summary() string {
	var parts []string
	if r.Successful > 0 {
		parts = append(parts, fmt.Sprintf("Assigned: %d.", r.Successful))
	}
	if r.AlreadyAssigned > 0 {
		parts = append(parts, fmt.Sprintf("Already assigned: %d.", r.AlreadyAssigned))
	}
	if r.Failed > 0 {
		parts = append(parts, fmt.Sprintf("Failed: %d.", r.Failed))
	}
	return strings.Join(parts, " ")
}

// Runner submits drafts to the portal
type Runner struct {
	sub   Subscriber
	limit int
}

// NewRunner creates a runner with at most limit concurrent requests
func NewRunner(sub Subscriber, limit int) *Runner {
	if limit < 1 {
		limit = DefaultConcurrency
	}
	return &Runner{sub: sub, limit: limit}
}

// Run subscribes every drafted user to every drafted course. Every pair is
// attempted and lands in exactly one bucket of the report; a failing pair
// does not stop the others.
func (r *Runner) Run(ctx context.Context, d Draft) (Report, error) {
	if !d.Ready() {
		return Report{}, ErrNothingToAssign
	}

	var (
		mu     sync.Mutex
		report Report
	)
	record := func(userID, courseID int, res api.SubscribeResult, err error) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case err != nil:
			report.Failed++
			report.Failures = append(report.Failures, Failure{UserID: userID, CourseID: courseID, Err: err})
		case res.Already:
			report.AlreadyAssigned++
		default:
			report.Successful++
		}
	}

	var g errgroup.Group
	g.SetLimit(r.limit)

	for _, p := range d.Users {
		for _, c := range d.Courses {
			userID, courseID := p.User.ID, c.ID
			if userID == 0 {
				userID = p.ID
			}
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					record(userID, courseID, api.SubscribeResult{}, err)
					return nil
				}
				res, err := r.sub.Subscribe(ctx, userID, courseID)
				if err != nil {
					log.Printf("Assign: user %d course %d failed: %v", userID, courseID, err)
				}
				record(userID, courseID, res, err)
				return nil
			})
		}
	}
	_ = g.Wait()

	log.Printf("Assign: %d pairs, %s", report.Total(), report.Summary())
	return report, nil
}
