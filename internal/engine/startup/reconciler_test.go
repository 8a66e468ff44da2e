package startup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports/mocks"
	"go.trai.ch/nbreq/internal/engine/startup"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	doc        *mocks.MockDocument
	discoverer *mocks.MockPackageDiscoverer
	reconciler *startup.Reconciler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	f := &fixture{
		doc:        mocks.NewMockDocument(ctrl),
		discoverer: mocks.NewMockPackageDiscoverer(ctrl),
	}
	f.doc.EXPECT().Path().Return("notebook.ipynb").AnyTimes()
	f.reconciler = startup.NewReconciler(f.discoverer, log)
	return f
}

func (f *fixture) withRequirements(packages domain.PackageMap) {
	spec := domain.NewRequirementsSpec("3.11").WithPackages(packages)
	f.doc.EXPECT().Requirements().Return(&spec, nil)
}

func TestReconcile_NoRequirements(t *testing.T) {
	f := newFixture(t)
	f.doc.EXPECT().Requirements().Return(nil, nil)
	f.doc.EXPECT().PythonVersion().Return("3.10")

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "my-kernel")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInitial, out.Status)
	assert.Equal(t, "3.10", out.Requirements.PythonVersion)
	assert.Equal(t, []domain.Source{domain.DefaultSource()}, out.Requirements.Sources)
	assert.Empty(t, out.Saved)
	assert.Equal(t, "my-kernel", out.KernelName)
}

func TestReconcile_EmptyRequirements(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{})

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInitial, out.Status)
}

func TestReconcile_NoLock(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"A": "1.0"})
	f.doc.EXPECT().RequirementsLock().Return(nil, nil)

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOnlyInstall, out.Status)
	assert.Equal(t, domain.PackageMap{"A": "1.0"}, out.Saved)
	assert.Empty(t, out.Installed)
}

func TestReconcile_Stable(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"A": "1.0"})
	f.doc.EXPECT().RequirementsLock().Return(domain.LockedRequirements{"a": {Version: "==1.0"}}, nil)
	f.doc.EXPECT().KernelName().Return("notebook-kernel")
	f.discoverer.EXPECT().
		DiscoverInstalledPackages(gomock.Any(), "notebook-kernel").
		Return(domain.PackageMap{"A": "1.0"}, nil)

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "default")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusStable, out.Status)
	assert.Equal(t, domain.PackageMap{"A": "1.0"}, out.Installed)
	assert.Equal(t, "notebook-kernel", out.KernelName)
}

func TestReconcile_CaseInsensitiveNames(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"Flask": "1.0"})
	f.doc.EXPECT().RequirementsLock().Return(domain.LockedRequirements{"flask": {Version: "==1.0"}}, nil)
	f.doc.EXPECT().KernelName().Return("")
	f.discoverer.EXPECT().
		DiscoverInstalledPackages(gomock.Any(), "default").
		Return(domain.PackageMap{"flask": "1.0"}, nil)

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "default")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusStable, out.Status)
	assert.Equal(t, "default", out.KernelName)
}

func TestReconcile_NothingInstalled(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"A": "1.0"})
	f.doc.EXPECT().RequirementsLock().Return(domain.LockedRequirements{"a": {Version: "==1.0"}}, nil)
	f.doc.EXPECT().KernelName().Return("k")
	f.discoverer.EXPECT().DiscoverInstalledPackages(gomock.Any(), "k").Return(domain.PackageMap{}, nil)

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOnlyInstallKernel, out.Status)
	assert.Empty(t, out.Installed)
}

func TestReconcile_VersionMismatch(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"A": "*", "B": "*"})
	f.doc.EXPECT().RequirementsLock().Return(domain.LockedRequirements{
		"a": {Version: "==1.0"},
		"b": {Version: "==2.0"},
	}, nil)
	f.doc.EXPECT().KernelName().Return("k")
	f.discoverer.EXPECT().DiscoverInstalledPackages(gomock.Any(), "k").Return(domain.PackageMap{
		"a": "1.0",
		"b": "1.9",
	}, nil)

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOnlyInstallKernel, out.Status)
	assert.Equal(t, domain.PackageMap{"A": "*"}, out.Installed)
}

func TestReconcile_RequirementMissingFromLock(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"A": "1.0", "C": "3.0"})
	f.doc.EXPECT().RequirementsLock().Return(domain.LockedRequirements{"a": {Version: "==1.0"}}, nil)
	f.doc.EXPECT().KernelName().Return("k")
	f.discoverer.EXPECT().DiscoverInstalledPackages(gomock.Any(), "k").Return(domain.PackageMap{"a": "1.0"}, nil)

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOnlyInstallKernel, out.Status)
	assert.Equal(t, domain.PackageMap{"A": "1.0"}, out.Installed)
}

func TestReconcile_TransitiveLockedPackagesMustBeInstalled(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"flask": "*"})
	f.doc.EXPECT().RequirementsLock().Return(domain.LockedRequirements{
		"flask":    {Version: "==3.0.0"},
		"werkzeug": {Version: "==3.0.1"},
	}, nil)
	f.doc.EXPECT().KernelName().Return("k")
	f.discoverer.EXPECT().DiscoverInstalledPackages(gomock.Any(), "k").Return(domain.PackageMap{
		"Flask": "3.0.0",
		"pip":   "24.0",
	}, nil)

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOnlyInstallKernel, out.Status)
	assert.Equal(t, domain.PackageMap{"flask": "*"}, out.Installed)
}

func TestReconcile_DiscoveryFailure(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"A": "1.0"})
	f.doc.EXPECT().RequirementsLock().Return(domain.LockedRequirements{"a": {Version: "==1.0"}}, nil)
	f.doc.EXPECT().KernelName().Return("k")
	f.discoverer.EXPECT().DiscoverInstalledPackages(gomock.Any(), "k").Return(nil, errors.New("no venv"))

	_, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDiscoveryFailed))
	assert.Contains(t, err.Error(), "no venv")
}

func TestReconcile_DocumentReadFailure(t *testing.T) {
	f := newFixture(t)
	f.doc.EXPECT().Requirements().Return(nil, errors.New("corrupt metadata"))

	_, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrDiscoveryFailed))
}

func TestReconcile_InstalledComparedByCount(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"A": "1.0"})
	f.doc.EXPECT().RequirementsLock().Return(domain.LockedRequirements{
		"a": {Version: "==1.0"},
		"b": {Version: "==2.0"},
	}, nil)
	f.doc.EXPECT().KernelName().Return("k")
	// "b" is missing, but two spellings of "a" balance the count.
	f.discoverer.EXPECT().DiscoverInstalledPackages(gomock.Any(), "k").Return(domain.PackageMap{
		"A": "1.0",
		"a": "1.0",
	}, nil)

	out, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusStable, out.Status)
}

func TestReconcile_DiscoveryCancelled(t *testing.T) {
	f := newFixture(t)
	f.withRequirements(domain.PackageMap{"A": "1.0"})
	f.doc.EXPECT().RequirementsLock().Return(domain.LockedRequirements{"a": {Version: "==1.0"}}, nil)
	f.doc.EXPECT().KernelName().Return("k")
	f.discoverer.EXPECT().DiscoverInstalledPackages(gomock.Any(), "k").Return(nil, context.Canceled)

	_, err := f.reconciler.Reconcile(context.Background(), f.doc, "k")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDiscoveryFailed))
	assert.True(t, errors.Is(err, context.Canceled))
}
