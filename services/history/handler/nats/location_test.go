package nats

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/rumbus/shuttle/internal/pkg/constants"
	"github.com/rumbus/shuttle/internal/pkg/models"
	natspkg "github.com/rumbus/shuttle/internal/pkg/nats"
	"github.com/rumbus/shuttle/services/history/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runServer(t *testing.T) string {
	t.Helper()
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	s := natsserver.RunServer(&opts)
	t.Cleanup(s.Shutdown)
	return s.ClientURL()
}

func newClient(t *testing.T, url string) *natspkg.Client {
	t.Helper()
	client, err := natspkg.NewClient(url)
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestLocationHandler_RecordsEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := newClient(t, runServer(t))
	mockUC := mocks.NewMockHistoryUC(ctrl)
	handler := NewLocationHandler(mockUC, client, nil)
	require.NoError(t, handler.InitNATSConsumers())
	defer handler.Close()

	ts := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	event := models.LocationEvent{SessionID: "sess-1", TripID: "trip-42", Lat: 18.2145, Lon: -67.14, Timestamp: ts}

	recorded := make(chan models.LocationEvent, 1)
	mockUC.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.LocationEvent) error {
			recorded <- got
			return nil
		})

	require.NoError(t, client.PublishJSON(constants.SubjectVehicleLocation, event))

	select {
	case got := <-recorded:
		assert.Equal(t, "trip-42", got.TripID)
		assert.True(t, ts.Equal(got.Timestamp))
	case <-time.After(2 * time.Second):
		t.Fatal("location event was not recorded")
	}
}

func TestLocationHandler_QueueGroupRecordsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	url := runServer(t)
	publisher := newClient(t, url)

	var calls int32
	mockUC := mocks.NewMockHistoryUC(ctrl)
	mockUC.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.LocationEvent) error {
			atomic.AddInt32(&calls, 1)
			return nil
		}).AnyTimes()

	for i := 0; i < 2; i++ {
		subscriber := newClient(t, url)
		h := NewLocationHandler(mockUC, subscriber, nil)
		require.NoError(t, h.InitNATSConsumers())
		require.NoError(t, subscriber.GetConn().Flush())
		t.Cleanup(h.Close)
	}

	require.NoError(t, publisher.PublishJSON(constants.SubjectVehicleLocation, models.LocationEvent{TripID: "trip-42"}))

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHandleLocation_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLocationHandler(mocks.NewMockHistoryUC(ctrl), nil, nil)

	err := handler.handleLocation([]byte("not json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal location event")
}

func TestHandleLocation_RecordFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockHistoryUC(ctrl)
	handler := NewLocationHandler(mockUC, nil, nil)

	mockUC.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).Return(models.ErrStorageUnavailable)

	err := handler.handleLocation([]byte(`{"trip_id":"trip-42","lat":1,"lon":2}`))

	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
}
