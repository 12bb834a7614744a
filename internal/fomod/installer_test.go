package fomod_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmm/internal/domain"
	"bmm/internal/fomod"
)

const testInfoXML = `<fomod>
  <Name> Lush Overhaul </Name>
  <Author>someone</Author>
  <Version>2.1</Version>
</fomod>`

const testConfigXML = `<config xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <moduleName>Lush Overhaul</moduleName>
  <requiredInstallFiles>
    <file source="LushOverhaul.esp" priority="0" />
  </requiredInstallFiles>
  <installSteps order="Explicit">
    <installStep name="Textures">
      <optionalFileGroups order="Explicit">
        <group name="Resolution" type="SelectExactlyOne">
          <plugins order="Explicit">
            <plugin name="2K">
              <description>Standard textures.</description>
              <files>
                <folder source="textures-2k" destination="textures" priority="0" />
              </files>
              <typeDescriptor><type name="Recommended" /></typeDescriptor>
            </plugin>
            <plugin name="4K">
              <description>High resolution textures.</description>
              <files>
                <folder source="textures-4k" destination="textures" priority="1" />
              </files>
              <conditionFlags>
                <flag name="hires">On</flag>
              </conditionFlags>
              <typeDescriptor><type name="Optional" /></typeDescriptor>
            </plugin>
          </plugins>
        </group>
      </optionalFileGroups>
    </installStep>
    <installStep name="Extras">
      <visible>
        <flagDependency flag="hires" value="On" />
      </visible>
      <optionalFileGroups order="Explicit">
        <group name="Addons" type="SelectAny">
          <plugins order="Explicit">
            <plugin name="Parallax">
              <files>
                <file source="parallax.esp" priority="2" />
              </files>
              <typeDescriptor><type name="Optional" /></typeDescriptor>
            </plugin>
          </plugins>
        </group>
      </optionalFileGroups>
    </installStep>
  </installSteps>
  <conditionalFileInstalls>
    <patterns>
      <pattern>
        <dependencies operator="And">
          <flagDependency flag="hires" value="On" />
        </dependencies>
        <files>
          <file source="hires-tweaks.ini" destination="LushOverhaul.ini" />
        </files>
      </pattern>
    </patterns>
  </conditionalFileInstalls>
</config>`

func writeInstaller(t *testing.T, configXML string) fomod.InstallerFiles {
	t.Helper()

	dir := t.TempDir()
	fomodDir := filepath.Join(dir, "fomod")
	require.NoError(t, os.MkdirAll(fomodDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fomodDir, "info.xml"), []byte(testInfoXML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(fomodDir, "ModuleConfig.xml"), []byte(configXML), 0o644))

	files, err := fomod.FindInstallerFiles(dir)
	require.NoError(t, err)
	return files
}

func TestFindInstallerFiles_NotFound(t *testing.T) {
	_, err := fomod.FindInstallerFiles(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrFomodNotFound)
}

func TestFindInstallerFiles_FomodDirItself(t *testing.T) {
	files := writeInstaller(t, testConfigXML)

	direct, err := fomod.FindInstallerFiles(filepath.Dir(files.InfoPath))
	require.NoError(t, err)
	assert.Equal(t, files, direct)
}

func TestInstaller_Walkthrough(t *testing.T) {
	ins, err := fomod.NewInstaller(writeInstaller(t, testConfigXML), fomod.Env{})
	require.NoError(t, err)
	assert.Equal(t, "Lush Overhaul", ins.Name())
	assert.Equal(t, "Lush Overhaul", ins.Info().Name)
	assert.Equal(t, "2.1", ins.Info().Version)

	step, err := ins.Start()
	require.NoError(t, err)
	require.NotNil(t, step)
	assert.Equal(t, "Textures", step.Name)
	require.Len(t, step.Groups, 1)

	group := step.Groups[0]
	assert.Equal(t, fomod.SelectExactlyOne, group.Type)
	require.Len(t, group.Plugins, 2)
	assert.Equal(t, "2K", group.Plugins[0].Name)
	assert.Equal(t, fomod.TypeRecommended, group.Plugins[0].Type)

	// Pick 4K, which sets the hires flag and reveals the Extras step.
	step, err = ins.Next(fomod.Answer{group.ID: {group.Plugins[1].ID}})
	require.NoError(t, err)
	require.NotNil(t, step)
	assert.Equal(t, "Extras", step.Name)

	addons := step.Groups[0]
	step, err = ins.Next(fomod.Answer{addons.ID: {addons.Plugins[0].ID}})
	require.NoError(t, err)
	assert.Nil(t, step)
	assert.True(t, ins.Done())

	plan, err := ins.Plan()
	require.NoError(t, err)

	bysrc := map[string]fomod.PlanEntry{}
	for _, e := range plan {
		bysrc[e.Source] = e
	}
	assert.Contains(t, bysrc, "LushOverhaul.esp")
	assert.Contains(t, bysrc, "parallax.esp")
	assert.Contains(t, bysrc, "hires-tweaks.ini")
	assert.Equal(t, "LushOverhaul.ini", bysrc["hires-tweaks.ini"].Destination)

	tex := bysrc["textures-4k"]
	assert.True(t, tex.IsFolder)
	assert.Equal(t, "textures", tex.Destination)
	assert.NotContains(t, bysrc, "textures-2k")
}

func TestInstaller_StepSkippedWhenNotVisible(t *testing.T) {
	ins, err := fomod.NewInstaller(writeInstaller(t, testConfigXML), fomod.Env{})
	require.NoError(t, err)

	step, err := ins.Start()
	require.NoError(t, err)

	// Pick 2K: no hires flag, so Extras is skipped and the walk is done.
	group := step.Groups[0]
	step, err = ins.Next(fomod.Answer{group.ID: {group.Plugins[0].ID}})
	require.NoError(t, err)
	assert.Nil(t, step)

	plan, err := ins.Plan()
	require.NoError(t, err)

	sources := make([]string, 0, len(plan))
	for _, e := range plan {
		sources = append(sources, e.Source)
	}
	assert.ElementsMatch(t, []string{"LushOverhaul.esp", "textures-2k"}, sources)
}

func TestInstaller_Back(t *testing.T) {
	ins, err := fomod.NewInstaller(writeInstaller(t, testConfigXML), fomod.Env{})
	require.NoError(t, err)

	step, err := ins.Start()
	require.NoError(t, err)
	group := step.Groups[0]

	step, err = ins.Next(fomod.Answer{group.ID: {group.Plugins[1].ID}})
	require.NoError(t, err)
	assert.Equal(t, "Extras", step.Name)

	// Going back discards the 4K answer and its hires flag.
	step, err = ins.Back()
	require.NoError(t, err)
	assert.Equal(t, "Textures", step.Name)

	group = step.Groups[0]
	step, err = ins.Next(fomod.Answer{group.ID: {group.Plugins[0].ID}})
	require.NoError(t, err)
	assert.Nil(t, step)

	_, err = ins.Back()
	require.NoError(t, err)
	_, err = ins.Back()
	assert.Error(t, err)
}

func TestInstaller_AnswerValidation(t *testing.T) {
	tests := []struct {
		name    string
		pick    func(g fomod.Group) []string
		wantErr string
	}{
		{"none picked", func(fomod.Group) []string { return nil }, "exactly one"},
		{"both picked", func(g fomod.Group) []string { return []string{g.Plugins[0].ID, g.Plugins[1].ID} }, "exactly one"},
		{"unknown id", func(fomod.Group) []string { return []string{"bogus"} }, "unknown plugin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := fomod.NewInstaller(writeInstaller(t, testConfigXML), fomod.Env{})
			require.NoError(t, err)

			step, err := ins.Start()
			require.NoError(t, err)

			_, err = ins.Next(fomod.Answer{step.Groups[0].ID: tt.pick(step.Groups[0])})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			// The step is still current and can be answered again.
			require.NotNil(t, ins.Current())
		})
	}
}

func TestInstaller_ModuleDependencyBlocksStart(t *testing.T) {
	const gated = `<config>
  <moduleName>Gated</moduleName>
  <moduleDependencies operator="And">
    <gameDependency version="1.6.0.0" />
  </moduleDependencies>
</config>`

	ins, err := fomod.NewInstaller(writeInstaller(t, gated), fomod.Env{GameVersion: "1.5.97.0"})
	require.NoError(t, err)

	_, err = ins.Start()
	require.Error(t, err)
	var depErr *fomod.DependencyError
	assert.ErrorAs(t, err, &depErr)
}

func TestInstaller_NoStepsStillPlansRequiredFiles(t *testing.T) {
	const bare = `<config>
  <moduleName>Bare</moduleName>
  <requiredInstallFiles>
    <file source="bare.esp" />
    <folder source="meshes" destination="meshes" />
  </requiredInstallFiles>
</config>`

	ins, err := fomod.NewInstaller(writeInstaller(t, bare), fomod.Env{})
	require.NoError(t, err)

	step, err := ins.Start()
	require.NoError(t, err)
	assert.Nil(t, step)
	assert.True(t, ins.Done())

	plan, err := ins.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "bare.esp", plan[0].Source)
	assert.True(t, plan[1].IsFolder)
}
