package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_Nil(t *testing.T) {
	err := New("a.js: bad")
	errs := Append(nil, err)
	require.NotNil(t, errs)
	require.Equal(t, []error{err}, errs.Slice())

	assert.Equal(t, errs, Append(errs, nil))

	var none Errors
	assert.Nil(t, Append(none, nil))
}

func TestAppend_Flattens(t *testing.T) {
	err0, err1, err2, err3 := New("e0"), New("e1"), New("e2"), New("e3")

	errs01 := Append(Append(nil, err0), err1)
	errs23 := Append(Append(nil, err2), err3)

	errs := Append(errs01, errs23)
	assert.Equal(t, []error{err0, err1, err2, err3}, errs.Slice())
	assert.Equal(t, 4, errs.Len())

	// the inputs are left alone
	assert.Equal(t, []error{err0, err1}, errs01.Slice())
	assert.Equal(t, "e0\ne1\ne2\ne3", errs.Error())
}

func TestCombine(t *testing.T) {
	err0, err1 := New("e0"), New("e1")
	assert.Nil(t, Combine(nil, nil))
	assert.Equal(t, err0, Combine(err0, nil))
	assert.Equal(t, err1, Combine(nil, err1))

	errs, ok := Combine(err0, err1).(Errors)
	require.True(t, ok)
	assert.Equal(t, []error{err0, err1}, errs.Slice())

	errs, ok = Combine(errs, New("e2")).(Errors)
	require.True(t, ok)
	assert.Equal(t, 3, errs.Len())
}

func TestDefer(t *testing.T) {
	closeErr := New("close failed")
	run := func(body error) (err error) {
		defer Defer(&err, func() error { return closeErr })
		return body
	}

	assert.Equal(t, closeErr, run(nil))

	err := run(New("read failed"))
	require.Error(t, err)
	assert.Equal(t, "read failed\nclose failed", err.Error())
}

func TestWrapf(t *testing.T) {
	base := New("boom")
	err := Wrapf(base, "file %s", "x.js")
	assert.EqualError(t, err, "file x.js: boom")
	assert.Equal(t, base, Cause(err))
	assert.True(t, Is(err, base))

	assert.EqualError(t, Wrapf(nil, "no %s", "cause"), "no cause")
	assert.Nil(t, WrapfOrNil(nil, "unused"))
}
