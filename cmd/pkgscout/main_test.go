package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/pkgscout/pkgscout/internal/app"
	"github.com/pkgscout/pkgscout/internal/core/domain"
	"github.com/pkgscout/pkgscout/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestApp(ctrl *gomock.Controller, logger *mocks.MockLogger) *app.App {
	return app.New(
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockDescriber(ctrl),
		mocks.NewMockPackageCache(ctrl),
		mocks.NewMockWalker(ctrl),
		mocks.NewMockPrompter(ctrl),
		logger,
	)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(domain.Settings{}, errors.New("load failed")).AnyTimes()

	application := app.New(
		mockLoader,
		mocks.NewMockDescriber(ctrl),
		mocks.NewMockPackageCache(ctrl),
		mocks.NewMockWalker(ctrl),
		mocks.NewMockPrompter(ctrl),
		mockLogger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"scan", t.TempDir()}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
