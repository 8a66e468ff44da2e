package locking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports/mocks"
	"go.trai.ch/nbreq/internal/engine/locking"
	"go.uber.org/mock/gomock"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	primary   *mocks.MockPrimaryResolver
	secondary *mocks.MockSecondaryResolver
	config    *mocks.MockConfigSource
	journal   *mocks.MockLockJournal
	logger    *mocks.MockLogger
	doc       *mocks.MockDocument
	orch      *locking.Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		primary:   mocks.NewMockPrimaryResolver(ctrl),
		secondary: mocks.NewMockSecondaryResolver(ctrl),
		config:    mocks.NewMockConfigSource(ctrl),
		journal:   mocks.NewMockLockJournal(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		doc:       mocks.NewMockDocument(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.doc.EXPECT().Path().Return("nb.ipynb").AnyTimes()

	f.orch = locking.NewOrchestrator(f.primary, f.secondary, f.config, f.journal, f.logger)
	f.orch.SetClock(func() time.Time { return fixedTime })
	return f
}

func request(doc *mocks.MockDocument) locking.Request {
	return locking.Request{
		Document:           doc,
		SessionID:          "session-1",
		KernelName:         "k",
		RecommendationType: domain.RecommendationSecurity,
		Requirements:       domain.NewRequirementsSpec("3.11").WithPackages(domain.PackageMap{"flask": "*"}),
	}
}

func baseConfig() *domain.ResolverConfig {
	return &domain.ResolverConfig{
		Host:      "khemenu.thoth-station.ninja",
		TLSVerify: true,
		RuntimeEnvironments: []domain.RuntimeEnvironment{
			{Name: "ubi8", PythonVersion: "3.11", RecommendationType: domain.RecommendationLatest},
		},
	}
}

func TestLockWithPrimary_Success(t *testing.T) {
	f := newFixture(t)
	req := request(f.doc)

	advisedReqs := req.Requirements.WithPackages(domain.PackageMap{"flask": "==3.0.0"})
	lock := domain.LockedRequirements{"flask": {Version: "==3.0.0"}, "werkzeug": {Version: "==3.0.1"}}

	f.config.EXPECT().RetrieveConfig(gomock.Any(), "k").Return(baseConfig(), nil)
	f.primary.EXPECT().
		Advise(gomock.Any(), "k", gomock.Any(), req.Requirements).
		DoAndReturn(func(_ context.Context, _ string, cfg domain.ResolverConfig, _ domain.RequirementsSpec) (*domain.AdviseResult, error) {
			assert.Equal(t, domain.RecommendationSecurity, cfg.RuntimeEnvironments[0].RecommendationType)
			return &domain.AdviseResult{Requirements: advisedReqs, RequirementsLock: lock}, nil
		})

	gomock.InOrder(
		f.doc.EXPECT().SetRequirements(advisedReqs),
		f.doc.EXPECT().SetRequirementsLock(lock),
		f.doc.EXPECT().SetResolverConfig(baseConfig().WithRecommendationType(domain.RecommendationSecurity)),
		f.doc.EXPECT().Save().Return(nil),
	)
	f.journal.EXPECT().Record(domain.LockRecord{
		SessionID:   "session-1",
		KernelName:  "k",
		Resolver:    domain.ResolverThoth,
		Fingerprint: locking.Fingerprint(advisedReqs),
		Requested:   1,
		Locked:      2,
		Timestamp:   fixedTime,
	}).Return(nil)

	res, err := f.orch.LockWithPrimary(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInstallingRequirements, res.Status)
	assert.Equal(t, lock, res.Lock)
	assert.Equal(t, advisedReqs, res.Requirements)
}

func TestLockWithPrimary_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name: "config retrieval fails",
			setup: func(f *fixture) {
				f.config.EXPECT().RetrieveConfig(gomock.Any(), "k").Return(nil, errors.New("no config"))
			},
		},
		{
			name: "resolver throws",
			setup: func(f *fixture) {
				f.config.EXPECT().RetrieveConfig(gomock.Any(), "k").Return(baseConfig(), nil)
				f.primary.EXPECT().Advise(gomock.Any(), "k", gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
		},
		{
			name: "resolver declares an error",
			setup: func(f *fixture) {
				f.config.EXPECT().RetrieveConfig(gomock.Any(), "k").Return(baseConfig(), nil)
				f.primary.EXPECT().Advise(gomock.Any(), "k", gomock.Any(), gomock.Any()).
					Return(&domain.AdviseResult{Error: true}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.orch.LockWithPrimary(context.Background(), request(f.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrPrimaryResolverFailed))
		})
	}
}

func TestLockWithPrimary_KeepsCause(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().RetrieveConfig(gomock.Any(), "k").Return(baseConfig(), nil)
	f.primary.EXPECT().Advise(gomock.Any(), "k", gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

	_, err := f.orch.LockWithPrimary(context.Background(), request(f.doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPrimaryResolverFailed))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLockWithFallback_KeepsCause(t *testing.T) {
	f := newFixture(t)
	f.secondary.EXPECT().Lock(gomock.Any(), "k", gomock.Any()).Return(nil, context.Canceled)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, domain.ErrResolutionExhausted))
		assert.True(t, errors.Is(err, context.Canceled))
	})

	res := f.orch.LockWithFallback(context.Background(), request(f.doc))
	assert.Equal(t, domain.StatusFailed, res.Status)
}

func TestLockWithFallback_Success(t *testing.T) {
	f := newFixture(t)
	req := request(f.doc)
	lock := domain.LockedRequirements{"flask": {Version: "==2.3.0"}}

	f.secondary.EXPECT().Lock(gomock.Any(), "k", req.Requirements).
		Return(&domain.FallbackResult{RequirementsLock: lock}, nil)
	f.doc.EXPECT().SetRequirementsLock(lock)
	f.doc.EXPECT().Save().Return(nil)
	f.journal.EXPECT().Record(gomock.Any()).DoAndReturn(func(r domain.LockRecord) error {
		assert.Equal(t, domain.ResolverPipenv, r.Resolver)
		assert.Equal(t, locking.Fingerprint(req.Requirements), r.Fingerprint)
		return nil
	})

	res := f.orch.LockWithFallback(context.Background(), req)
	assert.Equal(t, domain.StatusInstallingRequirements, res.Status)
	assert.Empty(t, res.ErrorMessage)
	assert.Equal(t, lock, res.Lock)
}

func TestLockWithFallback_Failures(t *testing.T) {
	tests := []struct {
		name   string
		result *domain.FallbackResult
		err    error
	}{
		{name: "declared error", result: &domain.FallbackResult{Error: true}},
		{name: "thrown error", err: errors.New("pipenv not found")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.secondary.EXPECT().Lock(gomock.Any(), "k", gomock.Any()).Return(tt.result, tt.err)
			f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
				assert.True(t, errors.Is(err, domain.ErrResolutionExhausted))
			})

			res := f.orch.LockWithFallback(context.Background(), request(f.doc))
			assert.Equal(t, domain.StatusFailed, res.Status)
			assert.Equal(t, domain.MsgResolutionExhausted, res.ErrorMessage)
		})
	}
}

func TestLock_FallsBackExactlyOnce(t *testing.T) {
	f := newFixture(t)
	lock := domain.LockedRequirements{"flask": {Version: "==2.3.0"}}

	f.config.EXPECT().RetrieveConfig(gomock.Any(), "k").Return(baseConfig(), nil)
	f.primary.EXPECT().Advise(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom"))
	f.secondary.EXPECT().Lock(gomock.Any(), "k", gomock.Any()).
		Return(&domain.FallbackResult{RequirementsLock: lock}, nil).
		Times(1)
	f.doc.EXPECT().SetRequirementsLock(lock)
	f.doc.EXPECT().Save().Return(nil)
	f.journal.EXPECT().Record(gomock.Any()).Return(nil)

	fallbacks := 0
	res := f.orch.Lock(context.Background(), request(f.doc), func() { fallbacks++ })

	assert.Equal(t, 1, fallbacks)
	assert.Equal(t, domain.StatusInstallingRequirements, res.Status)
}

func TestLock_BothResolversFail(t *testing.T) {
	f := newFixture(t)

	f.config.EXPECT().RetrieveConfig(gomock.Any(), "k").Return(baseConfig(), nil)
	f.primary.EXPECT().Advise(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.AdviseResult{Error: true}, nil)
	f.secondary.EXPECT().Lock(gomock.Any(), "k", gomock.Any()).
		Return(&domain.FallbackResult{Error: true}, nil)
	f.logger.EXPECT().Error(gomock.Any())

	res := f.orch.Lock(context.Background(), request(f.doc), nil)

	assert.Equal(t, domain.StatusFailed, res.Status)
	assert.Equal(t, domain.MsgResolutionExhausted, res.ErrorMessage)
}

func TestLock_SaveFailureIsLogged(t *testing.T) {
	f := newFixture(t)
	lock := domain.LockedRequirements{"flask": {Version: "==2.3.0"}}

	f.secondary.EXPECT().Lock(gomock.Any(), "k", gomock.Any()).
		Return(&domain.FallbackResult{RequirementsLock: lock}, nil)
	f.doc.EXPECT().SetRequirementsLock(lock)
	f.doc.EXPECT().Save().Return(errors.New("read-only file system"))
	f.logger.EXPECT().Error(gomock.Any())
	f.journal.EXPECT().Record(gomock.Any()).Return(nil)

	res := f.orch.LockWithFallback(context.Background(), request(f.doc))
	assert.Equal(t, domain.StatusInstallingRequirements, res.Status)
}

func TestFingerprint(t *testing.T) {
	a := domain.NewRequirementsSpec("3.11").WithPackages(domain.PackageMap{"Flask": "*", "numpy": "1.26"})
	b := domain.NewRequirementsSpec("3.11").WithPackages(domain.PackageMap{"numpy": "1.26", "flask": "*"})
	c := domain.NewRequirementsSpec("3.12").WithPackages(domain.PackageMap{"numpy": "1.26", "flask": "*"})
	d := domain.NewRequirementsSpec("3.11").WithPackages(domain.PackageMap{"numpy": "1.25", "flask": "*"})

	assert.Equal(t, locking.Fingerprint(a), locking.Fingerprint(b))
	assert.NotEqual(t, locking.Fingerprint(a), locking.Fingerprint(c))
	assert.NotEqual(t, locking.Fingerprint(a), locking.Fingerprint(d))
}
