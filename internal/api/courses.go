package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"eduadmin/internal/domain"
)

const alreadySubscribed = "already subscribed"

// Courses lists all courses
func (c *Client) Courses(ctx context.Context) ([]domain.Course, error) {
	courses, err := getList[domain.Course](ctx, c, "courses/courses/")
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	return courses, nil
}

// AdminProgress lists the progress of every user on every course. Staff only.
func (c *Client) AdminProgress(ctx context.Context) ([]domain.Progress, error) {
	progress, err := getList[domain.Progress](ctx, c, "courses/progress/admin_progress/")
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	return progress, nil
}

// SubscribeResult is the outcome of one course assignment
type SubscribeResult struct {
	Already  bool
	Progress *domain.Progress
}

// Subscribe assigns a course to a user. Assigning a course twice is not an
// error; the result reports Already instead.
func (c *Client) Subscribe(ctx context.Context, userID, courseID int) (SubscribeResult, error) {
	in := map[string]int{"user_id": userID, "course_id": courseID}
	status, data, err := c.send(ctx, http.MethodPost, "courses/progress/subscribe/", in)
	if err != nil {
		return SubscribeResult{}, fmt.Errorf("failed to assign course %d to user %d: %w", courseID, userID, err)
	}

	if status == http.StatusOK {
		var reply struct {
			Status string `json:"status"`
		}
		if json.Unmarshal(data, &reply) == nil && reply.Status == alreadySubscribed {
			return SubscribeResult{Already: true}, nil
		}
	}

	var progress domain.Progress
	if err := json.Unmarshal(data, &progress); err != nil {
		return SubscribeResult{}, fmt.Errorf("failed to decode subscription: %w", err)
	}
	return SubscribeResult{Progress: &progress}, nil
}

// Unsubscribe removes a progress record
func (c *Client) Unsubscribe(ctx context.Context, progressID int) error {
	path := "courses/progress/" + strconv.Itoa(progressID) + "/unsubscribe/"
	if _, _, err := c.send(ctx, http.MethodPost, path, nil); err != nil {
		return fmt.Errorf("failed to unsubscribe progress %d: %w", progressID, err)
	}
	return nil
}
