package enrollment_test

import (
	"context"
	"encoding/json"
	"testing"

	"schedule-service/internal/apperr"
	"schedule-service/internal/class"
	"schedule-service/internal/enrollment"
	"schedule-service/internal/equipment"
	"schedule-service/internal/events"
	"schedule-service/internal/logger"
	"schedule-service/internal/metrics"
	"schedule-service/internal/student"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reference fakes treat id 404 and ci 00000000000 as missing.
type fakeClasses struct {
	class.Repository
}

func (f *fakeClasses) Exists(_ context.Context, id int) (bool, error) {
	return id != 404, nil
}

type fakeStudents struct {
	student.Repository
}

func (f *fakeStudents) Exists(_ context.Context, ci string) (bool, error) {
	return ci != "00000000000", nil
}

type fakeEquipment struct {
	equipment.Repository
}

func (f *fakeEquipment) Exists(_ context.Context, id int) (bool, error) {
	return id != 404, nil
}

// memRepo keeps enrollments in a set keyed by their composite key.
type memRepo struct {
	rows map[enrollment.Key]bool
}

func newMemRepo(keys ...enrollment.Key) *memRepo {
	r := &memRepo{rows: map[enrollment.Key]bool{}}
	for _, k := range keys {
		r.rows[k] = true
	}
	return r
}

func row(k enrollment.Key) *enrollment.Enrollment {
	return &enrollment.Enrollment{ClassID: k.ClassID, StudentCI: k.StudentCI, EquipmentID: k.EquipmentID}
}

func (r *memRepo) Create(_ context.Context, e *enrollment.Enrollment) (*enrollment.Enrollment, error) {
	if r.rows[e.Key()] {
		return nil, apperr.New(apperr.ErrConflict, "duplicate entry")
	}
	r.rows[e.Key()] = true
	return e, nil
}

func (r *memRepo) GetAll(_ context.Context) ([]enrollment.Enrollment, error) {
	out := make([]enrollment.Enrollment, 0, len(r.rows))
	for k := range r.rows {
		out = append(out, *row(k))
	}
	return out, nil
}

func (r *memRepo) GetByKey(_ context.Context, key enrollment.Key) (*enrollment.Enrollment, error) {
	if !r.rows[key] {
		return nil, enrollment.ErrEnrollmentNotFound
	}
	return row(key), nil
}

func (r *memRepo) Exists(_ context.Context, key enrollment.Key) (bool, error) {
	return r.rows[key], nil
}

func (r *memRepo) UpdateKey(_ context.Context, old, updated enrollment.Key) error {
	if !r.rows[old] {
		return enrollment.ErrEnrollmentNotFound
	}
	delete(r.rows, old)
	r.rows[updated] = true
	return nil
}

func (r *memRepo) Delete(_ context.Context, key enrollment.Key) error {
	if !r.rows[key] {
		return enrollment.ErrEnrollmentNotFound
	}
	delete(r.rows, key)
	return nil
}

func (r *memRepo) DeleteByClass(_ context.Context, classID int) (int, error) {
	n := 0
	for k := range r.rows {
		if k.ClassID == classID {
			delete(r.rows, k)
			n++
		}
	}
	return n, nil
}

func newService(repo enrollment.Repository) enrollment.Service {
	return enrollment.NewService(repo, &fakeClasses{}, &fakeStudents{}, &fakeEquipment{}, nil, metrics.NewMock())
}

var (
	keyA = enrollment.Key{ClassID: 1, StudentCI: "45678901234", EquipmentID: 1}
	keyB = enrollment.Key{ClassID: 1, StudentCI: "45678901234", EquipmentID: 2}
)

func TestCreateEnrollment(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate", func(t *testing.T) {
		repo := newMemRepo(keyA)
		svc := newService(repo)

		_, err := svc.CreateEnrollment(ctx, enrollment.CreateEnrollmentRequest{ClassID: 1, StudentCI: "45678901234", EquipmentID: 1})

		assert.ErrorIs(t, err, apperr.ErrConflict)
		assert.Equal(t, "duplicate entry", apperr.Message(err))
		assert.Len(t, repo.rows, 1)
	})

	t.Run("MissingStudent", func(t *testing.T) {
		repo := newMemRepo()
		svc := newService(repo)

		_, err := svc.CreateEnrollment(ctx, enrollment.CreateEnrollmentRequest{ClassID: 1, StudentCI: "00000000000", EquipmentID: 1})

		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Empty(t, repo.rows)
	})

	t.Run("MissingClass", func(t *testing.T) {
		repo := newMemRepo()
		svc := newService(repo)

		_, err := svc.CreateEnrollment(ctx, enrollment.CreateEnrollmentRequest{ClassID: 404, StudentCI: "45678901234", EquipmentID: 1})

		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Equal(t, "class 404 does not exist", apperr.Message(err))
	})

	t.Run("Created", func(t *testing.T) {
		repo := newMemRepo()
		svc := newService(repo)

		created, err := svc.CreateEnrollment(ctx, enrollment.CreateEnrollmentRequest{ClassID: 1, StudentCI: "45678901234", EquipmentID: 1})

		require.NoError(t, err)
		assert.Equal(t, keyA, created.Key())
		assert.True(t, repo.rows[keyA])
	})
}

func TestUpdateEnrollment(t *testing.T) {
	ctx := context.Background()

	t.Run("MovesToNewKey", func(t *testing.T) {
		repo := newMemRepo(keyA)
		svc := newService(repo)

		updated, err := svc.UpdateEnrollment(ctx, keyA, enrollment.UpdateEnrollmentRequest{ClassID: 1, StudentCI: "45678901234", EquipmentID: 2})

		require.NoError(t, err)
		assert.Equal(t, keyB, updated.Key())
		assert.False(t, repo.rows[keyA])
		assert.True(t, repo.rows[keyB])
	})

	t.Run("SameKey", func(t *testing.T) {
		repo := newMemRepo(keyA)
		svc := newService(repo)

		updated, err := svc.UpdateEnrollment(ctx, keyA, enrollment.UpdateEnrollmentRequest{ClassID: 1, StudentCI: "45678901234", EquipmentID: 1})

		require.NoError(t, err)
		assert.Equal(t, keyA, updated.Key())
	})

	t.Run("CollidesWithExisting", func(t *testing.T) {
		repo := newMemRepo(keyA, keyB)
		svc := newService(repo)

		_, err := svc.UpdateEnrollment(ctx, keyA, enrollment.UpdateEnrollmentRequest{ClassID: 1, StudentCI: "45678901234", EquipmentID: 2})

		assert.ErrorIs(t, err, apperr.ErrConflict)
		assert.True(t, repo.rows[keyA])
		assert.True(t, repo.rows[keyB])
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := newService(newMemRepo())

		_, err := svc.UpdateEnrollment(ctx, keyA, enrollment.UpdateEnrollmentRequest{ClassID: 1, StudentCI: "45678901234", EquipmentID: 2})

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

type recordingPublisher struct {
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Destination() string { return "memory" }
func (p *recordingPublisher) Close() error        { return nil }

func TestUpdateEnrollment_Event(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	m := metrics.NewMock()
	svc := enrollment.NewService(newMemRepo(keyA), &fakeClasses{}, &fakeStudents{}, &fakeEquipment{}, events.NewEmitter(pub, logger.Discard(), m), m)

	_, err := svc.UpdateEnrollment(ctx, keyA, enrollment.UpdateEnrollmentRequest{ClassID: 1, StudentCI: "45678901234", EquipmentID: 2})
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "enrollment.updated", pub.events[0].Type)
	assert.Equal(t, "1/45678901234/2", pub.events[0].Key)

	payload, err := json.Marshal(pub.events[0].Payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"previous": {"class_id":1,"student_ci":"45678901234","equipment_id":1},
		"current": {"class_id":1,"student_ci":"45678901234","equipment_id":2}
	}`, string(payload))
}

func TestDeleteEnrollment(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo(keyA)
	svc := newService(repo)

	require.NoError(t, svc.DeleteEnrollment(ctx, keyA))
	assert.ErrorIs(t, svc.DeleteEnrollment(ctx, keyA), enrollment.ErrEnrollmentNotFound)

	_, err := svc.GetAllEnrollments(ctx)
	assert.ErrorIs(t, err, enrollment.ErrNoEnrollments)
}
