package rcapture

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

// fakeBackend scripts a Backend for recorder tests and records call order.
type fakeBackend struct {
	dims    Dimensions
	dimsErr error
	grabErr error
	frame   func(Dimensions) *RawFrame

	dimsCalls int
	grabCalls int
	lastDims  Dimensions
}

func (f *fakeBackend) Dimensions() (Dimensions, error) {
	f.dimsCalls++
	return f.dims, f.dimsErr
}

func (f *fakeBackend) Grab(dims Dimensions) (*RawFrame, error) {
	f.grabCalls++
	f.lastDims = dims
	if f.grabErr != nil {
		return nil, f.grabErr
	}
	return f.frame(dims), nil
}

func solidRGBX(value byte) func(Dimensions) *RawFrame {
	return func(dims Dimensions) *RawFrame {
		data := make([]byte, dims.Width*dims.Height*4)
		for i := range data {
			data[i] = value
		}
		return &RawFrame{
			Layout: LayoutRGBX32,
			Dims:   dims,
			Stride: dims.Width * 4,
			Data:   data,
		}
	}
}

func TestRecorder_CaptureNextFrame(t *testing.T) {
	backend := &fakeBackend{
		dims:  Dimensions{Width: 8, Height: 4},
		frame: solidRGBX(0x7f),
	}
	recorder := NewRecorder(backend)

	frame, err := recorder.CaptureNextFrame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frame) != 8*4*3 {
		t.Errorf("expected %d bytes, got %d", 8*4*3, len(frame))
	}
	if got := recorder.FrameCount(); got != 1 {
		t.Errorf("expected frame count 1, got %d", got)
	}
	if backend.lastDims != backend.dims {
		t.Errorf("grab used %v, dimensions query returned %v", backend.lastDims, backend.dims)
	}
}

func TestRecorder_QueriesGeometryPerCapture(t *testing.T) {
	backend := &fakeBackend{
		dims:  Dimensions{Width: 2, Height: 2},
		frame: solidRGBX(0),
	}
	recorder := NewRecorder(backend)

	for i := 0; i < 3; i++ {
		if _, err := recorder.CaptureNextFrame(); err != nil {
			t.Fatalf("capture %d: %v", i, err)
		}
	}
	if backend.dimsCalls != 3 || backend.grabCalls != 3 {
		t.Errorf("expected 3 dimension queries and 3 grabs, got %d and %d",
			backend.dimsCalls, backend.grabCalls)
	}
}

func TestRecorder_FailuresLeaveCountUnchanged(t *testing.T) {
	handleErr := errors.New("display unreachable")

	cases := []struct {
		name    string
		backend *fakeBackend
	}{
		{"dimensions error", &fakeBackend{dimsErr: handleErr}},
		{"grab error", &fakeBackend{dims: Dimensions{4, 4}, grabErr: handleErr}},
		{"bad raw frame", &fakeBackend{
			dims: Dimensions{4, 4},
			frame: func(dims Dimensions) *RawFrame {
				return &RawFrame{Layout: LayoutRGBX32, Dims: dims, Stride: 16, Data: make([]byte, 3)}
			},
		}},
	}

	for _, tc := range cases {
		recorder := NewRecorder(tc.backend)
		if _, err := recorder.CaptureNextFrame(); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
		if got := recorder.FrameCount(); got != 0 {
			t.Errorf("%s: frame count moved to %d on failure", tc.name, got)
		}
	}
}

func TestRecorder_StaticScreenIsDeterministic(t *testing.T) {
	backend := &fakeBackend{
		dims:  Dimensions{Width: 16, Height: 9},
		frame: solidRGBX(0x42),
	}
	recorder := NewRecorder(backend)

	first, err := recorder.CaptureNextFrame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := recorder.CaptureNextFrame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("back-to-back captures of a static screen differ")
	}
}

func TestRecorder_ZeroAreaDisplay(t *testing.T) {
	backend := &fakeBackend{
		dims: Dimensions{Width: 0, Height: 0},
		frame: func(dims Dimensions) *RawFrame {
			return emptyFrame(LayoutRGBX32, dims)
		},
	}
	recorder := NewRecorder(backend)

	frame, err := recorder.CaptureNextFrame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frame) != 0 {
		t.Errorf("expected empty frame, got %d bytes", len(frame))
	}
	if got := recorder.FrameCount(); got != 1 {
		t.Errorf("empty capture still completed, expected count 1, got %d", got)
	}
}

func TestRecorder_ConcurrentCaptures(t *testing.T) {
	const captures = 24

	backend := &fakeBackend{
		dims:  Dimensions{Width: 4, Height: 4},
		frame: solidRGBX(1),
	}
	recorder := NewRecorder(backend)

	var wg sync.WaitGroup
	for i := 0; i < captures; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := recorder.CaptureNextFrame(); err != nil {
				t.Errorf("concurrent capture failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := recorder.FrameCount(); got != captures {
		t.Errorf("expected %d captures counted, got %d", captures, got)
	}
}
