package pipeline

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-numseq"
	"github.com/tphakala/go-numseq/internal/testutil"
)

func newTestEnv() *Env {
	env := NewEnv(rand.NewPCG(1, 2))
	env.Sequences["melody"] = numseq.New([]float64{0, 2, 4, 5, 7}, 60)
	env.Sequences["other"] = numseq.New([]float64{10, 20}, 0)
	return env
}

func run(t *testing.T, env *Env, specs ...StageSpec) {
	t.Helper()
	p, err := BuildPipeline(specs)
	require.NoError(t, err)
	require.NoError(t, p.Run(env))
}

func TestStageTypeNames(t *testing.T) {
	for st := StageApply; st <= StageStats; st++ {
		got, err := ParseStageType(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
	_, err := ParseStageType("explode")
	require.ErrorIs(t, err, numseq.ErrConfiguration)
	assert.Equal(t, "StageType(99)", StageType(99).String())
}

func TestRun_InPlaceChain(t *testing.T) {
	env := newTestEnv()

	run(t, env,
		StageSpec{Type: StageApply, Target: "melody", Params: Params{Op: numseq.OpAdd, Operand: numseq.Scalar(12)}},
		StageSpec{Type: StageReverse, Target: "melody"},
		StageSpec{Type: StageRepeat, Target: "melody", Params: Params{N: 2}},
		StageSpec{Type: StageUnique, Target: "melody", Params: Params{Unique: numseq.UniqueFirst}},
	)

	melody := env.Sequences["melody"]
	assert.Equal(t, []float64{79, 77, 76, 74, 72}, melody.Values())
	assert.Equal(t, []float64{60, 62, 64, 65, 67}, melody.Original())
	assert.Empty(t, env.Outputs)
}

func TestRun_IntoKeepsTarget(t *testing.T) {
	env := newTestEnv()

	run(t, env,
		StageSpec{Type: StageApply, Target: "melody", Into: "sum", Params: Params{Op: numseq.OpMul, With: "other"}},
		StageSpec{Type: StageClip, Target: "melody", Into: "clipped", Params: Params{Min: 61, Max: 65}},
		StageSpec{Type: StageApply, Target: "other", Into: "diff", Params: Params{Op: numseq.OpSub, Operand: numseq.Scalar(100), Reversed: true}},
	)

	assert.Equal(t, []float64{60, 62, 64, 65, 67}, env.Sequences["melody"].Values())
	assert.Equal(t, []float64{600, 1240, 64, 65, 67}, env.Sequences["sum"].Values())
	assert.Equal(t, []float64{61, 62, 64, 65, 65}, env.Sequences["clipped"].Values())
	assert.Equal(t, []float64{90, 80}, env.Sequences["diff"].Values())
	assert.Equal(t, []float64{10, 20}, env.Sequences["other"].Values())
}

func TestRun_Transforms(t *testing.T) {
	tests := []struct {
		name string
		spec StageSpec
		want []float64
	}{
		{"abs", StageSpec{Type: StageAbs}, []float64{1, 2, 3, 0}},
		{"neg", StageSpec{Type: StageNeg}, []float64{1, -2, 3, 0}},
		{"invert", StageSpec{Type: StageInvert}, []float64{0, -3, 2, -1}},
		{"invert around", StageSpec{Type: StageInvert, Params: Params{Value: 0, HasValue: true}}, []float64{1, -2, 3, 0}},
		{"scale", StageSpec{Type: StageScale, Params: Params{Min: 0, Max: 5}}, []float64{2, 5, 0, 3}},
		{"rotate", StageSpec{Type: StageRotate, Params: Params{N: 1}}, []float64{0, -1, 2, -3}},
		{"sort", StageSpec{Type: StageSort, Params: Params{Sort: numseq.Descending}}, []float64{2, 0, -1, -3}},
		{"pad", StageSpec{Type: StagePad, Params: Params{N: 2, Value: 9}}, []float64{-1, 2, -3, 0, 9, 9}},
		{"remove", StageSpec{Type: StageRemove, Params: Params{Selection: numseq.ByIndex(0, -1)}}, []float64{2, -3}},
		{"filter", StageSpec{Type: StageFilter, Params: Params{Expr: "x >= 0"}}, []float64{2, 0}},
		{"filter fill", StageSpec{Type: StageFilter, Params: Params{Expr: "x >= 0", Value: 7, HasValue: true}}, []float64{7, 2, 7, 0}},
		{"concat", StageSpec{Type: StageConcat, Params: Params{Operand: numseq.Values(5, 6)}}, []float64{-1, 2, -3, 0, 5, 6}},
		{"insert", StageSpec{Type: StageInsert, Params: Params{N: 1, Operand: numseq.Scalar(8)}}, []float64{-1, 8, 2, -3, 0}},
		{"interleave", StageSpec{Type: StageInterleave, Params: Params{N: 2, Operand: numseq.Values(5, 6)}}, []float64{-1, 2, 5, 6, -3, 0}},
		{"shift", StageSpec{Type: StageShift, Params: Params{Value: 1}}, []float64{0, 3, -2, 1}},
		{"round", StageSpec{Type: StageRound, Params: Params{N: 0}}, []float64{-1, 2, -3, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv(nil)
			env.Sequences["s"] = numseq.New([]float64{-1, 2, -3, 0}, 0)
			tt.spec.Target = "s"
			run(t, env, tt.spec)
			assert.Equal(t, tt.want, env.Sequences["s"].Values())
		})
	}
}

func TestRun_Reset(t *testing.T) {
	env := newTestEnv()

	run(t, env,
		StageSpec{Type: StageRepeat, Target: "melody", Params: Params{N: 3}},
		StageSpec{Type: StageReset, Target: "melody"},
	)
	assert.Equal(t, []float64{60, 62, 64, 65, 67}, env.Sequences["melody"].Values())
}

func TestRun_Generative(t *testing.T) {
	env := newTestEnv()
	env.Sequences["target"] = numseq.New([]float64{72, 74, 76, 77, 79}, 0)

	run(t, env,
		StageSpec{Type: StageSample, Target: "melody", Into: "wrapped", Params: Params{
			N: 6, Mode: numseq.SampleWrap, HasWindow: true, Start: 0, End: 2,
		}},
		StageSpec{Type: StageSplit, Target: "melody", Into: "part", Params: Params{
			Split: numseq.SplitOptions{Selection: numseq.ByIndex(2), KeepSeparator: true},
		}},
		StageSpec{Type: StageInterpolate, Target: "melody", Into: "blend", Params: Params{With: "target", N: 3}},
		StageSpec{Type: StageStats, Target: "melody"},
	)

	require.Len(t, env.Outputs, 4)

	assert.Equal(t, [][]float64{{60, 62, 64, 60, 62, 64}}, env.Outputs[0].Rows)
	assert.Equal(t, []float64{60, 62, 64, 60, 62, 64}, env.Sequences["wrapped"].Values())

	assert.Equal(t, [][]float64{{60, 62, 64}, {65, 67}}, env.Outputs[1].Rows)
	assert.Equal(t, []float64{65, 67}, env.Sequences["part.1"].Values())

	require.Len(t, env.Outputs[2].Rows, 3)
	testutil.AssertSliceInDelta(t, []float64{66, 68, 70, 71, 73}, env.Outputs[2].Rows[1], testutil.DefaultTolerance)
	assert.Contains(t, env.Sequences, "blend.2")

	stats := env.Outputs[3].Stats
	require.NotNil(t, stats)
	assert.Equal(t, 5, stats.Len)
	assert.Equal(t, 60.0, stats.Min)
	assert.Equal(t, 67.0, stats.Max)
	assert.Equal(t, 64.0, stats.Median)
	assert.InDelta(t, 63.6, stats.Mean, 1e-9)
	assert.Equal(t, 3, env.Outputs[3].Stage)
	assert.Equal(t, StageStats, env.Outputs[3].Type)
}

func TestRun_InterpolateCurve(t *testing.T) {
	env := newTestEnv()
	env.Sequences["target"] = numseq.New([]float64{72, 74, 76, 77, 79}, 0)

	run(t, env,
		StageSpec{Type: StageInterpolate, Target: "melody", Params: Params{
			With: "target", N: 3, Curve: 2, HasCurve: true,
		}},
		StageSpec{Type: StageInterpolate, Target: "melody", Params: Params{With: "target", N: 3}},
	)

	require.Len(t, env.Outputs, 2)
	testutil.AssertSliceInDelta(t, []float64{63, 65, 67, 68, 70}, env.Outputs[0].Rows[1], testutil.DefaultTolerance)
	testutil.AssertSliceInDelta(t, []float64{66, 68, 70, 71, 73}, env.Outputs[1].Rows[1], testutil.DefaultTolerance)
}

func TestRun_SeededShuffleIsReproducible(t *testing.T) {
	shuffle := StageSpec{Type: StageSort, Target: "melody", Params: Params{Sort: numseq.Shuffle}}

	a := newTestEnv()
	run(t, a, shuffle)
	b := newTestEnv()
	run(t, b, shuffle)

	assert.Equal(t, a.Sequences["melody"].Values(), b.Sequences["melody"].Values())
	testutil.AssertSameElements(t, []float64{60, 62, 64, 65, 67}, a.Sequences["melody"].Values())
}

func TestBuildPipeline_Validation(t *testing.T) {
	tests := []struct {
		name string
		spec StageSpec
	}{
		{"unknown type", StageSpec{Type: StageType(99), Target: "s"}},
		{"missing target", StageSpec{Type: StageAbs}},
		{"bad op", StageSpec{Type: StageApply, Target: "s", Params: Params{Op: numseq.Op(42)}}},
		{"remove without selection", StageSpec{Type: StageRemove, Target: "s"}},
		{"split without selection", StageSpec{Type: StageSplit, Target: "s"}},
		{"filter without expression", StageSpec{Type: StageFilter, Target: "s"}},
		{"interpolate without partner", StageSpec{Type: StageInterpolate, Target: "s", Params: Params{N: 2}}},
		{"interpolate without steps", StageSpec{Type: StageInterpolate, Target: "s", Params: Params{With: "t"}}},
		{"interpolate zero curve", StageSpec{Type: StageInterpolate, Target: "s", Params: Params{With: "t", N: 2, HasCurve: true}}},
		{"negative repeat", StageSpec{Type: StageRepeat, Target: "s", Params: Params{N: -1}}},
		{"zero interleave step", StageSpec{Type: StageInterleave, Target: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := StageSpec{Type: StageAbs, Target: "s"}
			_, err := BuildPipeline([]StageSpec{ok, tt.spec})
			require.ErrorIs(t, err, numseq.ErrConfiguration)
			assert.Contains(t, err.Error(), "stage 1")
		})
	}
}

func TestRun_ErrorsStopTheChain(t *testing.T) {
	env := newTestEnv()

	p, err := BuildPipeline([]StageSpec{
		{Type: StageAbs, Target: "melody"},
		{Type: StageSample, Target: "melody", Params: Params{N: 9, Mode: numseq.SampleRandNoReplace}},
		{Type: StageRepeat, Target: "melody", Params: Params{N: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())

	err = p.Run(env)
	require.ErrorIs(t, err, numseq.ErrSampling)
	assert.Contains(t, err.Error(), "stage 1 (sample)")
	assert.Len(t, env.Sequences["melody"].Values(), 5)

	_, err = BuildPipeline([]StageSpec{{Type: StageAbs, Target: "missing"}})
	require.NoError(t, err)
	p, _ = BuildPipeline([]StageSpec{{Type: StageAbs, Target: "missing"}})
	require.ErrorIs(t, p.Run(env), numseq.ErrConfiguration)

	p, _ = BuildPipeline([]StageSpec{{Type: StageConcat, Target: "melody", Params: Params{With: "missing"}}})
	require.ErrorIs(t, p.Run(env), numseq.ErrConfiguration)
}

func TestRun_LogsStagesAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	p, err := BuildPipeline([]StageSpec{
		{Type: StageReverse, Target: "melody", Into: "rev"},
	}, WithLogger(l))
	require.NoError(t, err)
	require.NoError(t, p.Run(newTestEnv()))

	out := buf.String()
	assert.Contains(t, out, "applying stage")
	assert.Contains(t, out, "type=reverse")
	assert.Contains(t, out, "into=rev")
}

func TestStages_ReturnsCopy(t *testing.T) {
	p, err := BuildPipeline([]StageSpec{{Type: StageAbs, Target: "s"}})
	require.NoError(t, err)

	stages := p.Stages()
	stages[0].Target = "changed"
	assert.Equal(t, "s", p.Stages()[0].Target)
}
