package random_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrand/random"
)

func TestCodec_Layout(t *testing.T) {
	text := string(random.Encode(random.NewSeeded(seedFixture)))

	assert.True(t, strings.HasPrefix(text, "random-v2 42 42 "), text[:40])
	assert.True(t, strings.HasSuffix(text, " 312 endrandom-v2\n"))
	assert.Len(t, strings.Fields(text), 316)
}

// TestCodec_RoundTrip covers states before, at and after twist boundaries.
func TestCodec_RoundTrip(t *testing.T) {
	for _, skip := range []uint64{0, 1, 311, 312, 313, 1000} {
		e := random.NewSeeded(seedFixture)
		e.Discard(skip)

		d, err := random.Decode(random.Encode(e))
		require.NoError(t, err)
		require.Truef(t, e.Equal(d), "skip=%d", skip)
		assert.Equal(t, e.Seed(), d.Seed())
		for i := 0; i < 700; i++ {
			require.Equal(t, e.Uint64(), d.Uint64())
		}
	}
}

func TestCodec_Stable(t *testing.T) {
	a := random.NewSeeded(9)
	a.Discard(5)
	b := random.NewSeeded(9)
	b.Discard(5)
	assert.Equal(t, random.Encode(a), random.Encode(b))

	d, err := random.Decode(random.Encode(a))
	require.NoError(t, err)
	assert.Equal(t, random.Encode(a), random.Encode(d))
}

func TestCodec_ToleratesSurroundingWhitespace(t *testing.T) {
	e := random.NewSeeded(3)
	text := "\n  " + strings.TrimSpace(string(random.Encode(e))) + "\r\n\n"
	d, err := random.Decode([]byte(text))
	require.NoError(t, err)
	assert.True(t, e.Equal(d))
}

func TestCodec_Malformed(t *testing.T) {
	good := strings.Fields(string(random.Encode(random.NewSeeded(1))))
	mutate := func(i int, v string) []byte {
		f := append([]string(nil), good...)
		f[i] = v
		return []byte(strings.Join(f, " "))
	}

	cases := map[string][]byte{
		"empty":          nil,
		"garbage":        []byte("hello world"),
		"wrong tag":      mutate(0, "random-v1"),
		"missing end":    mutate(len(good)-1, "end"),
		"bad seed":       mutate(1, "-1"),
		"seed overflow":  mutate(1, "18446744073709551616"),
		"bad word":       mutate(10, "0x10"),
		"index too big":  mutate(len(good)-2, "313"),
		"negative index": mutate(len(good)-2, "-1"),
		"truncated":      []byte(strings.Join(good[:200], " ")),
		"trailing token": []byte(strings.Join(append(append([]string(nil), good...), "7"), " ")),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := random.Decode(in)
			assert.ErrorIs(t, err, random.ErrDeserialization)
		})
	}
}

func TestCodec_SaveLoadStreams(t *testing.T) {
	e := random.NewSeeded(seedFixture)
	e.Discard(400)

	var buf bytes.Buffer
	require.NoError(t, e.Save(&buf))
	d, err := random.Load(&buf)
	require.NoError(t, err)
	assert.True(t, e.Equal(d))
}

type failingIO struct{ err error }

func (f failingIO) Write([]byte) (int, error) { return 0, f.err }
func (f failingIO) Read([]byte) (int, error)  { return 0, f.err }

func TestCodec_StreamErrors(t *testing.T) {
	cause := errors.New("disk gone")

	err := random.NewSeeded(1).Save(failingIO{cause})
	assert.ErrorIs(t, err, random.ErrIO)
	assert.ErrorIs(t, err, cause)

	_, err = random.Load(failingIO{cause})
	var ioErr *random.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.Empty(t, ioErr.Path)
}

// TestCodec_TextMarshaler lets engines live inside JSON fixtures.
func TestCodec_TextMarshaler(t *testing.T) {
	type fixture struct {
		Name string         `json:"name"`
		RNG  *random.Engine `json:"rng"`
	}
	e := random.NewSeeded(seedFixture)
	e.Discard(3)

	blob, err := json.Marshal(fixture{Name: "spatial", RNG: e})
	require.NoError(t, err)
	assert.NotContains(t, string(blob), `\n`)

	var back fixture
	require.NoError(t, json.Unmarshal(blob, &back))
	require.NotNil(t, back.RNG)
	assert.True(t, e.Equal(back.RNG))

	var bad random.Engine
	assert.ErrorIs(t, bad.UnmarshalText([]byte("nope")), random.ErrDeserialization)
}
