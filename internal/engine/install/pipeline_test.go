package install_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nbreq/internal/core/domain"
	"go.trai.ch/nbreq/internal/core/ports/mocks"
	"go.trai.ch/nbreq/internal/engine/install"
	"go.uber.org/mock/gomock"
)

func newPipeline(t *testing.T) (*install.Pipeline, *mocks.MockInstaller, *mocks.MockKernelProvisioner, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	installer := mocks.NewMockInstaller(ctrl)
	provisioner := mocks.NewMockKernelProvisioner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	return install.NewPipeline(installer, provisioner, log), installer, provisioner, log
}

func TestPipeline_Install(t *testing.T) {
	p, installer, _, _ := newPipeline(t)
	installer.EXPECT().InstallPackages(gomock.Any(), "k").Return("installed 3 packages", nil).Times(1)

	res := p.Install(context.Background(), "k")
	assert.Equal(t, domain.StatusSettingKernel, res.Status)
	assert.Equal(t, "installed 3 packages", res.Message)
	assert.Empty(t, res.ErrorMessage)
}

func TestPipeline_Install_Failure(t *testing.T) {
	p, installer, _, log := newPipeline(t)
	installer.EXPECT().InstallPackages(gomock.Any(), "k").Return("", errors.New("hash mismatch")).Times(1)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, domain.ErrInstallFailed))
	})

	res := p.Install(context.Background(), "k")
	assert.Equal(t, domain.StatusFailed, res.Status)
	assert.Equal(t, domain.MsgInstallFailed, res.ErrorMessage)
}

func TestPipeline_ProvisionKernel(t *testing.T) {
	p, _, provisioner, _ := newPipeline(t)
	provisioner.EXPECT().CreateKernel(gomock.Any(), "k").Return("kernel k created", nil)

	res := p.ProvisionKernel(context.Background(), "k")
	assert.Equal(t, domain.StatusReady, res.Status)
}

func TestPipeline_ProvisionKernel_Failure(t *testing.T) {
	p, _, provisioner, log := newPipeline(t)
	provisioner.EXPECT().CreateKernel(gomock.Any(), "k").Return("", errors.New("ipykernel missing")).Times(1)
	log.EXPECT().Error(gomock.Any())

	res := p.ProvisionKernel(context.Background(), "k")
	assert.Equal(t, domain.StatusFailed, res.Status)
	assert.Equal(t, domain.MsgKernelFailed, res.ErrorMessage)
}

func TestPipeline_SwitchKernel(t *testing.T) {
	p, _, _, _ := newPipeline(t)
	ctrl := gomock.NewController(t)
	switcher := mocks.NewMockSessionSwitcher(ctrl)

	switcher.EXPECT().SwitchKernel(gomock.Any(), "k").Return(nil)
	require.NoError(t, p.SwitchKernel(context.Background(), switcher, "k"))

	switcher.EXPECT().SwitchKernel(gomock.Any(), "k").Return(errors.New("no session"))
	err := p.SwitchKernel(context.Background(), switcher, "k")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrKernelSwitchFailed))
}

func TestMetadataSwitcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	doc := mocks.NewMockDocument(ctrl)

	gomock.InOrder(
		doc.EXPECT().SetKernelName("k"),
		doc.EXPECT().Save().Return(nil),
	)

	require.NoError(t, install.NewMetadataSwitcher(doc).SwitchKernel(context.Background(), "k"))
}

func TestMetadataSwitcher_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	doc := mocks.NewMockDocument(ctrl)

	doc.EXPECT().SetKernelName("k")
	doc.EXPECT().Save().Return(errors.New("disk full"))
	doc.EXPECT().Path().Return("nb.ipynb")

	err := install.NewMetadataSwitcher(doc).SwitchKernel(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestPipeline_FailuresKeepCause(t *testing.T) {
	p, installer, provisioner, log := newPipeline(t)
	ctrl := gomock.NewController(t)
	switcher := mocks.NewMockSessionSwitcher(ctrl)

	installer.EXPECT().InstallPackages(gomock.Any(), "k").Return("", context.Canceled)
	provisioner.EXPECT().CreateKernel(gomock.Any(), "k").Return("", context.Canceled)
	switcher.EXPECT().SwitchKernel(gomock.Any(), "k").Return(context.Canceled)

	var logged []error
	log.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = append(logged, err) }).Times(2)

	p.Install(context.Background(), "k")
	p.ProvisionKernel(context.Background(), "k")
	switchErr := p.SwitchKernel(context.Background(), switcher, "k")

	require.Len(t, logged, 2)
	assert.True(t, errors.Is(logged[0], domain.ErrInstallFailed))
	assert.True(t, errors.Is(logged[0], context.Canceled))
	assert.True(t, errors.Is(logged[1], domain.ErrKernelProvisioningFailed))
	assert.True(t, errors.Is(logged[1], context.Canceled))
	assert.True(t, errors.Is(switchErr, domain.ErrKernelSwitchFailed))
	assert.True(t, errors.Is(switchErr, context.Canceled))
}
