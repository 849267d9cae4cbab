package message

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

type pickerFunc func(ctx context.Context, score int, outcome Outcome) (string, error)

func (f pickerFunc) Message(ctx context.Context, score int, outcome Outcome) (string, error) {
	return f(ctx, score, outcome)
}

func TestLocalPicksFromOutcomePool(t *testing.T) {
	p := NewLocal(1)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		msg, err := p.Message(ctx, 100, Loss)
		if err != nil || !slices.Contains(lossMessages, msg) {
			t.Fatalf("loss message %q (err %v) not from loss pool", msg, err)
		}
		msg, err = p.Message(ctx, 100, Win)
		if err != nil || !slices.Contains(winMessages, msg) {
			t.Fatalf("win message %q (err %v) not from win pool", msg, err)
		}
	}
}

func TestLocalIsDeterministicPerSeed(t *testing.T) {
	a, b := NewLocal(42), NewLocal(42)
	for i := 0; i < 10; i++ {
		ma, _ := a.Message(context.Background(), 0, Loss)
		mb, _ := b.Message(context.Background(), 0, Loss)
		if ma != mb {
			t.Fatalf("same seed diverged at %d: %q vs %q", i, ma, mb)
		}
	}
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name    string
		picker  Picker
		want    string
		wantErr bool
	}{
		{
			name: "success",
			picker: pickerFunc(func(context.Context, int, Outcome) (string, error) {
				return "ok", nil
			}),
			want: "ok",
		},
		{
			name: "error falls back",
			picker: pickerFunc(func(context.Context, int, Outcome) (string, error) {
				return "", errors.New("offline")
			}),
			want:    DefaultMessage,
			wantErr: true,
		},
		{
			name: "empty falls back",
			picker: pickerFunc(func(context.Context, int, Outcome) (string, error) {
				return "", nil
			}),
			want:    DefaultMessage,
			wantErr: true,
		},
		{
			name: "panic falls back",
			picker: pickerFunc(func(context.Context, int, Outcome) (string, error) {
				panic("boom")
			}),
			want:    DefaultMessage,
			wantErr: true,
		},
		{
			name: "timeout falls back",
			picker: pickerFunc(func(ctx context.Context, _ int, _ Outcome) (string, error) {
				<-ctx.Done()
				time.Sleep(5 * time.Millisecond)
				return "late", nil
			}),
			want:    DefaultMessage,
			wantErr: true,
		},
		{
			name:    "nil picker",
			picker:  nil,
			want:    DefaultMessage,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Fetch(context.Background(), tc.picker, 10, Loss, 20*time.Millisecond)
			if got != tc.want {
				t.Errorf("Fetch() = %q, expected %q", got, tc.want)
			}
			if (err != nil) != tc.wantErr {
				t.Errorf("Fetch() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	if Win.String() != "WIN" || Loss.String() != "LOSS" {
		t.Errorf("unexpected labels %q %q", Win, Loss)
	}
}
