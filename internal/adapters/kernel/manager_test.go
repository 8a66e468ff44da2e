package kernel_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nbreq/internal/adapters/config"
	"go.trai.ch/nbreq/internal/adapters/kernel"
	"go.trai.ch/nbreq/internal/adapters/pipfile"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports"
	"go.trai.ch/nbreq/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cfg     *domain.Config
	runner  *mocks.MockCommandRunner
	manager *kernel.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := config.Defaults()
	cfg.EnvironmentsDir = t.TempDir()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := mocks.NewMockCommandRunner(ctrl)
	return &fixture{
		cfg:     &cfg,
		runner:  runner,
		manager: kernel.NewManager(&cfg, runner, log),
	}
}

// withEnvironment creates a fake interpreter for the kernel.
func (f *fixture) withEnvironment(t *testing.T, name string) {
	t.Helper()
	python := f.cfg.KernelPython(name)
	require.NoError(t, os.MkdirAll(filepath.Dir(python), 0o750))
	require.NoError(t, os.WriteFile(python, nil, 0o700))
}

func (f *fixture) withLock(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, pipfile.WriteLock(f.cfg.KernelDir(name), pipfile.Lock{
		Default: domain.LockedRequirements{"flask": {Version: "==3.0.0"}},
	}))
}

func TestDiscover_NoEnvironment(t *testing.T) {
	f := newFixture(t)

	got, err := f.manager.DiscoverInstalledPackages(context.Background(), "analysis")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDiscover_ParsesPipList(t *testing.T) {
	f := newFixture(t)
	f.withEnvironment(t, "analysis")

	f.runner.EXPECT().
		Run(gomock.Any(), ports.Command{
			Argv: []string{f.cfg.KernelPython("analysis"), "-m", "pip", "list", "--format=json"},
			Dir:  f.cfg.KernelDir("analysis"),
		}).
		Return([]byte(`[{"name": "Flask", "version": "3.0.0"}, {"name": "pip", "version": "24.0"}]`), nil)

	got, err := f.manager.DiscoverInstalledPackages(context.Background(), "analysis")
	require.NoError(t, err)
	assert.Equal(t, domain.PackageMap{"Flask": "3.0.0", "pip": "24.0"}, got)
}

func TestDiscover_Errors(t *testing.T) {
	f := newFixture(t)
	f.withEnvironment(t, "analysis")

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	_, err := f.manager.DiscoverInstalledPackages(context.Background(), "analysis")
	require.Error(t, err)

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return([]byte("not json"), nil)
	_, err = f.manager.DiscoverInstalledPackages(context.Background(), "analysis")
	require.Error(t, err)
}

func TestInvalidKernelName(t *testing.T) {
	f := newFixture(t)

	for _, name := range []string{"", "..", "a/b"} {
		_, err := f.manager.DiscoverInstalledPackages(context.Background(), name)
		assert.ErrorIs(t, err, domain.ErrInvalidKernelName, name)

		_, err = f.manager.InstallPackages(context.Background(), name)
		assert.ErrorIs(t, err, domain.ErrInvalidKernelName, name)

		_, err = f.manager.CreateKernel(context.Background(), name)
		assert.ErrorIs(t, err, domain.ErrInvalidKernelName, name)
	}
}

func TestInstall_RequiresLock(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.InstallPackages(context.Background(), "analysis")
	require.Error(t, err)
}

func TestInstall_CreatesEnvironment(t *testing.T) {
	f := newFixture(t)
	f.withLock(t, "analysis")
	dir := f.cfg.KernelDir("analysis")
	python := f.cfg.KernelPython("analysis")

	gomock.InOrder(
		f.runner.EXPECT().
			Run(gomock.Any(), ports.Command{Argv: []string{"python3", "-m", "venv", dir}, Dir: dir}).
			Return(nil, nil),
		f.runner.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd ports.Command) ([]byte, error) {
				assert.Equal(t, python, cmd.Argv[0])
				assert.Contains(t, cmd.Argv, "micropipenv")
				assert.Contains(t, cmd.Env, "VIRTUAL_ENV="+dir)
				return nil, nil
			}),
		f.runner.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd ports.Command) ([]byte, error) {
				assert.Equal(t, []string{python, "-m", "micropipenv", "install"}, cmd.Argv)
				assert.Equal(t, dir, cmd.Dir)
				return nil, nil
			}),
	)

	msg, err := f.manager.InstallPackages(context.Background(), "analysis")
	require.NoError(t, err)
	assert.Contains(t, msg, "analysis")
}

func TestInstall_ExistingEnvironment(t *testing.T) {
	f := newFixture(t)
	f.withLock(t, "analysis")
	f.withEnvironment(t, "analysis")

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("resolution impossible"))

	_, err := f.manager.InstallPackages(context.Background(), "analysis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolution impossible")
}

func TestInstall_VenvFailure(t *testing.T) {
	f := newFixture(t)
	f.withLock(t, "analysis")

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("no venv module"))

	_, err := f.manager.InstallPackages(context.Background(), "analysis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create environment")
}

func TestCreateKernel(t *testing.T) {
	f := newFixture(t)
	f.withEnvironment(t, "analysis")

	f.runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) ([]byte, error) {
			assert.Equal(t, []string{
				f.cfg.KernelPython("analysis"),
				"-m", "ipykernel", "install", "--user", "--name", "analysis",
				"--display-name", "analysis",
			}, cmd.Argv)
			return nil, nil
		})

	msg, err := f.manager.CreateKernel(context.Background(), "analysis")
	require.NoError(t, err)
	assert.Equal(t, "created kernel analysis", msg)
}

func TestCreateKernel_Failure(t *testing.T) {
	f := newFixture(t)
	f.withEnvironment(t, "analysis")

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("ipykernel missing"))

	_, err := f.manager.CreateKernel(context.Background(), "analysis")
	require.Error(t, err)
}
