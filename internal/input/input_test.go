package input

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldocassola/xorcrack"
)

func TestParseEncoding(t *testing.T) {
	for in, want := range map[string]Encoding{"base64": Base64, "HEX": Hex, "Text": Text} {
		got, err := ParseEncoding(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseEncoding("rot13")
	assert.True(t, errors.Is(err, xorcrack.ErrInvalidArgument))
}

func TestSourceRead(t *testing.T) {
	src := Source{Stdin: strings.NewReader("from stdin")}

	t.Run("stdin", func(t *testing.T) {
		got, err := src.Read(context.Background(), "-")
		require.NoError(t, err)
		assert.Equal(t, "from stdin", got)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "6.txt")
		require.NoError(t, os.WriteFile(path, []byte("HUIf\nTQgT\n"), 0600))
		got, err := src.Read(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "HUIf\nTQgT\n", got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := src.Read(context.Background(), filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})

	t.Run("url", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/4.txt" {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte("0e3647e8592d35514a081243582536ed3de6734059001e3f535ce6271032\n"))
		}))
		defer ts.Close()

		s := Source{Client: ts.Client()}
		got, err := s.Read(context.Background(), ts.URL+"/4.txt")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "0e3647"))

		_, err = s.Read(context.Background(), ts.URL+"/missing")
		assert.ErrorContains(t, err, "404")
	})
}

func TestDecode(t *testing.T) {
	b, err := Decode("SSdtIGtp\nbGxpbmc=\n", Base64)
	require.NoError(t, err)
	assert.Equal(t, "I'm killing", b.String())

	b, err = Decode(" 4943\n45 ", Hex)
	require.NoError(t, err)
	assert.Equal(t, "ICE", b.String())

	b, err = Decode("keep\nnewlines\n", Text)
	require.NoError(t, err)
	assert.Equal(t, "keep\nnewlines\n", b.String())

	_, err = Decode("zz", Hex)
	assert.True(t, errors.Is(err, xorcrack.ErrInvalidEncoding))

	_, err = Decode("abc", Encoding("morse"))
	assert.True(t, errors.Is(err, xorcrack.ErrInvalidArgument))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, Lines("one\r\n\n  two  \n\n"))
	assert.Nil(t, Lines("\n \n"))
}

func TestDecodeLines(t *testing.T) {
	lines, err := DecodeLines("4943\n\n45\n", Hex)
	require.NoError(t, err)
	assert.Equal(t, []xorcrack.Bytes{{'I', 'C'}, {'E'}}, lines)

	_, err = DecodeLines("4943\nxx\n", Hex)
	assert.ErrorContains(t, err, "line 2")
}
