package cmd

import (
	"bytes"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oneconcern/pbxpatch/internal/rand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const destinationDir = "../../../testdata/cli"

const testProjectDoc = `// !$*UTF8*$!
{
	archiveVersion = 1;
	objectVersion = 56;
	objects = {

/* Begin PBXResourcesBuildPhase section */
		03FA02932A4C1D4B00E3E3E1 /* Copy Bundle Resources */ = {
			isa = PBXResourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				03FA02A12A4C1D4D00E3E3E1 /* Assets.xcassets in Copy Bundle Resources */,
				03FA02A42A4C1D4D00E3E3E1 /* InstaMathInfo.plist in Copy Bundle Resources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXResourcesBuildPhase section */

/* Begin PBXSourcesBuildPhase section */
		03FA028F2A4C1D4B00E3E3E1 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			buildActionMask = 2147483647;
			files = (
				03FA029A2A4C1D4B00E3E3E1 /* AppDelegate.swift in Sources */,
				03FA02A62A4C1D4E00E3E3E1 /* InstaMathInfo.plist in Sources */,
			);
			runOnlyForDeploymentPostprocessing = 0;
		};
/* End PBXSourcesBuildPhase section */
	};
	rootObject = 03FA028C2A4C1D4B00E3E3E1 /* Project object */;
}
`

type ExitMocks struct {
	mock.Mock
	fatalCalls int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	m.fatalCalls++
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	m.fatalCalls++
}

// https://github.com/stretchr/testify/issues/610
func MakeFatalfMock(m *ExitMocks) func(string, ...interface{}) {
	return func(format string, v ...interface{}) {
		m.Fatalf(format, v...)
	}
}

func MakeFatallnMock(m *ExitMocks) func(...interface{}) {
	return func(v ...interface{}) {
		m.Fatalln(v...)
	}
}

var exitMocks *ExitMocks

// setupTests drops a scratch xcodeproj tree under testdata and patches over
// the fatal exits. Flags are reset so every test states its own.
func setupTests(t *testing.T) (string, func()) {
	exitMocks = new(ExitMocks)
	logFatalf = MakeFatalfMock(exitMocks)
	logFatalln = MakeFatallnMock(exitMocks)
	pbxpatchFlags = flagsT{}

	projDir := filepath.Join(destinationDir, rand.LetterString(10), "InstaMath.xcodeproj")
	require.NoError(t, os.MkdirAll(projDir, 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(projDir, "project.pbxproj"), []byte(testProjectDoc), 0644))

	cleanup := func() {
		logFatalf = log.Fatalf
		logFatalln = log.Fatalln
		os.RemoveAll(destinationDir)
	}
	return projDir, cleanup
}

func runCaptured(t *testing.T, args ...string) string {
	var buf bytes.Buffer
	infoLogger.SetOutput(&buf)
	defer infoLogger.SetOutput(os.Stdout)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func projectContents(t *testing.T, projDir string) string {
	b, err := ioutil.ReadFile(filepath.Join(projDir, "project.pbxproj"))
	require.NoError(t, err)
	return string(b)
}

func TestResourceRemove(t *testing.T) {
	projDir, cleanup := setupTests(t)
	defer cleanup()

	out := runCaptured(t, "resource", "remove", "--project", projDir)
	require.Equal(t, 0, exitMocks.fatalCalls)
	assert.Contains(t, out, "created backup at")
	assert.Contains(t, out, `removed "InstaMathInfo.plist" from 1 "Copy Bundle Resources" section(s)`)

	doc := projectContents(t, projDir)
	assert.NotContains(t, doc, "InstaMathInfo.plist in Copy Bundle Resources")
	// the same entry in another phase stays
	assert.Contains(t, doc, "InstaMathInfo.plist in Sources")
	// the preceding entry lost its trailing comma
	assert.Contains(t, doc, "/* Assets.xcassets in Copy Bundle Resources */\n")

	backup, err := ioutil.ReadFile(filepath.Join(projDir, "project.pbxproj.bak"))
	require.NoError(t, err)
	assert.Equal(t, testProjectDoc, string(backup))
}

func TestResourceRemoveDryRun(t *testing.T) {
	projDir, cleanup := setupTests(t)
	defer cleanup()

	out := runCaptured(t, "resource", "remove", "--project", projDir, "--dry-run")
	require.Equal(t, 0, exitMocks.fatalCalls)
	assert.Contains(t, out, "InstaMathInfo.plist")
	assert.Contains(t, out, "(patched)")

	// nothing was written
	assert.Equal(t, testProjectDoc, projectContents(t, projDir))
	_, err := os.Stat(filepath.Join(projDir, "project.pbxproj.bak"))
	assert.True(t, os.IsNotExist(err))
}

func TestResourceRemoveSkipBackup(t *testing.T) {
	projDir, cleanup := setupTests(t)
	defer cleanup()

	out := runCaptured(t, "resource", "remove", "--project", projDir, "--skip-backup")
	require.Equal(t, 0, exitMocks.fatalCalls)
	assert.NotContains(t, out, "created backup at")

	_, err := os.Stat(filepath.Join(projDir, "project.pbxproj.bak"))
	assert.True(t, os.IsNotExist(err))
	assert.NotContains(t, projectContents(t, projDir), "InstaMathInfo.plist in Copy Bundle Resources")
}

func TestResourceRemoveNoMatch(t *testing.T) {
	projDir, cleanup := setupTests(t)
	defer cleanup()

	out := runCaptured(t, "resource", "remove", "--project", projDir, "--name", "Missing.plist")
	require.Equal(t, 0, exitMocks.fatalCalls)
	assert.Contains(t, out, "no changes were made")

	assert.Equal(t, testProjectDoc, projectContents(t, projDir))
	_, err := os.Stat(filepath.Join(projDir, "project.pbxproj.bak"))
	assert.True(t, os.IsNotExist(err))
}

func TestResourceRemoveMissingProject(t *testing.T) {
	_, cleanup := setupTests(t)
	defer cleanup()

	// negative test
	runCaptured(t, "resource", "remove", "--project", filepath.Join(destinationDir, "nosuch.xcodeproj"))
	require.Equal(t, 1, exitMocks.fatalCalls)
}

func TestResourceList(t *testing.T) {
	projDir, cleanup := setupTests(t)
	defer cleanup()

	out := runCaptured(t, "resource", "list", "--project", projDir)
	require.Equal(t, 0, exitMocks.fatalCalls)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "03FA02A12A4C1D4D00E3E3E1\tAssets.xcassets", lines[0])
	assert.Equal(t, "03FA02A42A4C1D4D00E3E3E1\tInstaMathInfo.plist", lines[1])
}

func TestResourceListOtherPhase(t *testing.T) {
	projDir, cleanup := setupTests(t)
	defer cleanup()

	out := runCaptured(t, "resource", "list", "--project", projDir, "--phase", "Sources")
	require.Equal(t, 0, exitMocks.fatalCalls)
	assert.Contains(t, out, "AppDelegate.swift")
	assert.NotContains(t, out, "Assets.xcassets")
}

func TestPhaseList(t *testing.T) {
	projDir, cleanup := setupTests(t)
	defer cleanup()

	out := runCaptured(t, "phase", "list", "--project", projDir)
	require.Equal(t, 0, exitMocks.fatalCalls)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Copy Bundle Resources\t2 entries", lines[0])
	assert.Equal(t, "Sources\t2 entries", lines[1])
}

func TestBackupCreateRestore(t *testing.T) {
	projDir, cleanup := setupTests(t)
	defer cleanup()

	out := runCaptured(t, "backup", "create", "--project", projDir)
	require.Equal(t, 0, exitMocks.fatalCalls)
	assert.Contains(t, out, "created backup at")

	// clobber the project file, then restore it
	projectFile := filepath.Join(projDir, "project.pbxproj")
	require.NoError(t, ioutil.WriteFile(projectFile, []byte("garbage"), 0644))

	out = runCaptured(t, "backup", "restore", "--project", projDir)
	require.Equal(t, 0, exitMocks.fatalCalls)
	assert.Contains(t, out, "restored")
	assert.Equal(t, testProjectDoc, projectContents(t, projDir))
}

func TestBackupRestoreMissing(t *testing.T) {
	projDir, cleanup := setupTests(t)
	defer cleanup()

	// negative test: no backup was ever taken
	runCaptured(t, "backup", "restore", "--project", projDir)
	require.Equal(t, 1, exitMocks.fatalCalls)
}
