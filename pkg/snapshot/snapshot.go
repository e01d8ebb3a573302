package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"sasku-server/internal/util"
)

// UpdateEnv is the environment variable that rewrites every golden file instead of comparing
const UpdateEnv = "SASKU_UPDATE_SNAPSHOTS"

var (
	funcCountMu sync.Mutex
	funcCount   = make(map[string]int)
)

// ValidateSnapshot compares the JSON encoding of obj with a golden file under testdata/
// The file is named after the calling test function and the number of prior calls it made. A
// missing golden file is written instead; depth skips that many extra stack frames for helpers
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()

	filename := goldenFile(2 + depth)
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if !assert.NoError(t, err) {
		return
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || util.Getenv(UpdateEnv, "") != "" {
		assert.NoError(t, write(filename, objJSON))
		return
	}

	if !assert.NoError(t, err) {
		return
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func goldenFile(skip int) string {
	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	funcCountMu.Lock()
	call := funcCount[funcName]
	funcCount[funcName] = call + 1
	funcCountMu.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", funcName, call))
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0o644) // nolint:gosec
}
