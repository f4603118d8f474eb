package mailwalk

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`data.json`, "data.json"},
		{`"data.json"`, "data.json"},
		{`"dir/data.json"` + "\n", filepath.Join("dir", "data.json")},
		{`"dir/data.json"` + "\r\n", filepath.Join("dir", "data.json")},
		{`""dir/data.json""`, filepath.Join("dir", "data.json")},
		{`'dir/data.json'`, filepath.FromSlash(`'dir/data.json'`)},
		{` dir/data.json`, filepath.FromSlash(` dir/data.json`)},
		{`dir//sub/../data.json`, filepath.Join("dir", "data.json")},
		{`""`, ""},
		{"", ""},
		{`"with space/x.json"`, filepath.Join("with space", "x.json")},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePath(tc.in), "input %q", tc.in)
	}
}

func TestTrimInput(t *testing.T) {
	require.Equal(t, "dir//sub/../x.json", TrimInput(`"dir//sub/../x.json"`+"\n"))
	require.Equal(t, "'x.json'", TrimInput(`'x.json'`))
	require.Equal(t, " x.json ", TrimInput(` x.json `))
	require.Equal(t, "", TrimInput("\n"))
}

func TestLoad(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "ok.json", `{"email":"a@x.com"}`)
		v, err := Load(p)
		require.NoError(t, err)
		require.Equal(t, D{{Key: "email", Value: "a@x.com"}}, v)
	})

	t.Run("number outside float64 range", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "big.json", `{"email":"a@x.com","n":1e400}`)
		v, err := Load(p)
		require.NoError(t, err)
		require.Equal(t, []string{"a@x.com"}, Extract(v))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		require.True(t, IsKind(err, KindInputNotFound))
		require.ErrorIs(t, err, ErrInputNotFound)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		require.True(t, IsKind(err, KindInputNotFound))
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.True(t, IsKind(err, KindInputNotFound))
	})

	t.Run("malformed json", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "bad.json", `{not json`)
		_, err := Load(p)
		require.Error(t, err)
		require.True(t, IsKind(err, KindInvalidFormat))
		require.ErrorIs(t, err, ErrInvalidFormat)

		var oe *OpError
		require.True(t, errors.As(err, &oe))
		require.Equal(t, p, oe.Path)
	})

	t.Run("permission denied", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("file modes are not enforced for this user")
		}
		p := writeFile(t, t.TempDir(), "locked.json", `{"email":"a@x.com"}`)
		require.NoError(t, os.Chmod(p, 0o000))
		_, err := Load(p)
		require.True(t, IsKind(err, KindAccessDenied))
	})

	t.Run("repair recovers trailing comma", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "trailing.json", `{"users":[{"email":"a@x.com"},],}`)

		_, err := Load(p)
		require.True(t, IsKind(err, KindInvalidFormat))

		v, err := Load(p, WithRepair())
		require.NoError(t, err)
		require.Equal(t, []string{"a@x.com"}, Extract(v))
	})
}

func TestExtractFile(t *testing.T) {
	t.Run("hits", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "users.json", `{"list":[{"email":"a@x.com"},{"email":"b@y.com"}]}`)
		got, err := ExtractFile(p, nil)
		require.NoError(t, err)
		require.Equal(t, []string{"a@x.com", "b@y.com"}, got)
	})

	t.Run("failure returns empty result", func(t *testing.T) {
		got, err := ExtractFile(filepath.Join(t.TempDir(), "nope.json"), nil)
		require.Error(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("walker options forwarded", func(t *testing.T) {
		p := writeFile(t, t.TempDir(), "lists.json", `{"email":["a@x.com"]}`)
		got, err := ExtractFile(p, nil, WithStringLists())
		require.NoError(t, err)
		require.Equal(t, []string{"a@x.com"}, got)
	})
}
