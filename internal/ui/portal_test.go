package ui

import (
	"context"
	"sync"

	"eduadmin/internal/api"
	"eduadmin/internal/config"
	"eduadmin/internal/domain"
	"eduadmin/internal/eventbus"
	"eduadmin/internal/session"
)

// fakePortal is an in-memory Portal
type fakePortal struct {
	mu         sync.Mutex
	session    *session.Session
	loginErr   error
	profiles   []domain.Profile
	courses    []domain.Course
	progress   []domain.Progress
	already    map[[2]int]bool
	failing    map[[2]int]error
	subscribed [][2]int
	logouts    int
}

func (p *fakePortal) Login(ctx context.Context, username, password string) error {
	return p.loginErr
}

func (p *fakePortal) Logout(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logouts++
	return nil
}

func (p *fakePortal) CurrentSession(ctx context.Context) (*session.Session, error) {
	return p.session, nil
}

func (p *fakePortal) Profiles(ctx context.Context) ([]domain.Profile, error) {
	return p.profiles, nil
}

func (p *fakePortal) Courses(ctx context.Context) ([]domain.Course, error) {
	return p.courses, nil
}

func (p *fakePortal) AdminProgress(ctx context.Context) ([]domain.Progress, error) {
	return p.progress, nil
}

func (p *fakePortal) Subscribe(ctx context.Context, userID, courseID int) (api.SubscribeResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pair := [2]int{userID, courseID}
	if err := p.failing[pair]; err != nil {
		return api.SubscribeResult{}, err
	}
	p.subscribed = append(p.subscribed, pair)
	return api.SubscribeResult{Already: p.already[pair]}, nil
}

// recordingBus keeps published events in order
type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) ofType(t eventbus.EventType) []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}

func testProfiles() []domain.Profile {
	return []domain.Profile{
		{ID: 1, User: domain.User{ID: 11, FirstName: "Ivan", LastName: "Petrov", Email: "ivan@corp.example"}, Branch: "cardio"},
		{ID: 2, User: domain.User{ID: 12, FirstName: "Olga", LastName: "Sidorova", Email: "olga@corp.example"}, Branch: "oncology"},
		{ID: 3, User: domain.User{ID: 13, FirstName: "Anna", LastName: "Kim", Email: "anna@corp.example"}, Branch: "Cardiology Research Institute"},
	}
}

func testCourses() []domain.Course {
	return []domain.Course{
		{ID: 7, Title: "Phishing basics", Category: "phishing"},
		{ID: 8, Title: "Strong passwords", Category: "password_sec"},
	}
}

func newTestModel() (*Model, *fakePortal, *recordingBus) {
	portal := &fakePortal{
		session:  session.New(domain.User{ID: 10, Username: "admin", IsStaff: true}, nil),
		profiles: testProfiles(),
		courses:  testCourses(),
	}
	bus := &recordingBus{}
	m := NewModel(config.DefaultConfig(), Options{Bus: bus, Portal: portal, BaseURL: "http://portal.test/api/"})
	return m, portal, bus
}
