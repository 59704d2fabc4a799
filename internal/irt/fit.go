package irt

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/optimize"

	"github.com/adaptly/calibrant/internal/store"
)

// OptimizationError wraps a solver failure. Runs that hit it end in
// the failed state with the message captured on the run record.
type OptimizationError struct {
	Stage string
	Err   error
}

func (e *OptimizationError) Error() string {
	return fmt.Sprintf("irt optimization failed (%s): %v", e.Stage, e.Err)
}

func (e *OptimizationError) Unwrap() error { return e.Err }

// FitOptions configures one fit. Zero values take the defaults below.
type FitOptions struct {
	Model ModelType
	Seed  int64

	// MaxIterations caps the solver's outer loop.
	MaxIterations int

	// WarmStart maps question ids to initial difficulty values on the
	// logit scale, typically the online engine's rating divided by its
	// Elo scale constant. Items absent from the map start from their
	// empirical accuracy instead.
	WarmStart map[string]float64

	// Prior standard deviations for the MAP penalties.
	PriorThetaSD float64
	PriorBSD     float64
	PriorLogASD  float64
}

const (
	defaultMaxIterations = 500
	defaultPriorThetaSD  = 1.0
	defaultPriorBSD      = 2.0
	defaultPriorLogASD   = 0.5
	priorRawCSD          = 1.0

	fitProbEps = 1e-9
)

func (o FitOptions) maxIterations() int {
	if o.MaxIterations <= 0 {
		return defaultMaxIterations
	}
	return o.MaxIterations
}

func (o FitOptions) priorThetaSD() float64 {
	if o.PriorThetaSD <= 0 {
		return defaultPriorThetaSD
	}
	return o.PriorThetaSD
}

func (o FitOptions) priorBSD() float64 {
	if o.PriorBSD <= 0 {
		return defaultPriorBSD
	}
	return o.PriorBSD
}

func (o FitOptions) priorLogASD() float64 {
	if o.PriorLogASD <= 0 {
		return defaultPriorLogASD
	}
	return o.PriorLogASD
}

// FitResult is the complete output of one fit.
type FitResult struct {
	Items     []store.ItemParams
	Abilities []store.UserAbility

	// NegLogLik is the training data negative log-likelihood at the
	// fitted parameters, priors excluded.
	NegLogLik    float64
	TrainLogLoss float64
	ValidLogLoss float64
	Iterations   int
}

// obsRow is a training row mapped onto parameter indices.
type obsRow struct {
	u, i int
	y    float64
}

// Fit runs the joint MAP estimation over a dataset. The result is a
// pure function of (dataset, options): same rows, model and seed
// reproduce the same parameters.
func Fit(d *Dataset, opts FitOptions) (*FitResult, error) {
	if _, err := ParseModelType(string(opts.Model)); err != nil {
		return nil, err
	}
	if d == nil || d.NObs() == 0 {
		return nil, ErrEmptyDataset
	}

	obj := newObjective(d, opts)
	x0 := obj.initial(d, opts)

	problem := optimize.Problem{
		Func: func(x []float64) float64 { return obj.eval(x, nil) },
		Grad: func(grad, x []float64) { obj.eval(x, grad) },
	}
	settings := &optimize.Settings{
		MajorIterations:   opts.maxIterations(),
		GradientThreshold: 1e-6,
	}

	res, err := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	if err != nil && !converged(obj, res, err) {
		return nil, &OptimizationError{Stage: "minimize", Err: err}
	}
	if res == nil || !isFinite(res.F) {
		return nil, &OptimizationError{Stage: "minimize",
			Err: fmt.Errorf("objective is not finite: %v", res.F)}
	}

	theta, b, a, c := obj.unpack(res.X)
	standardize(theta, b, a)

	result := &FitResult{Iterations: res.Stats.MajorIterations}
	result.Items = obj.itemParams(d, theta, b, a, c, opts)
	result.Abilities = obj.abilities(d, theta, b, a, c, opts)

	trainNLL, nTrain := dataNLL(obj.rows, theta, b, a, c)
	result.NegLogLik = trainNLL
	if nTrain > 0 {
		result.TrainLogLoss = trainNLL / float64(nTrain)
	}
	validRows := mapRows(d, d.Valid)
	validNLL, nValid := dataNLL(validRows, theta, b, a, c)
	if nValid > 0 {
		result.ValidLogLoss = validNLL / float64(nValid)
	}
	return result, nil
}

// lineSearchGradTol bounds the gradient inf-norm under which a
// line-search breakdown still counts as convergence.
const lineSearchGradTol = 1e-3

// converged reports whether a solver error is a benign line-search
// breakdown at an already-minimized point: the line search runs out of
// float64 resolution once no step can improve the objective, which on
// clean datasets happens at the optimum itself. The point is accepted
// only with a finite objective and a near-zero gradient; any other
// solver error, or a large gradient, still fails the fit.
func converged(obj *objective, res *optimize.Result, err error) bool {
	if !errors.Is(err, optimize.ErrLinesearcherFailure) {
		return false
	}
	if res == nil || len(res.X) == 0 || !isFinite(res.F) {
		return false
	}
	grad := make([]float64, len(res.X))
	obj.eval(res.X, grad)
	norm := 0.0
	for _, g := range grad {
		if math.Abs(g) > norm {
			norm = math.Abs(g)
		}
	}
	return norm <= lineSearchGradTol
}

type objective struct {
	model  ModelType
	rows   []obsRow
	nUsers int
	nItems int

	// cmax bounds the guessing asymptote per item at 1/option_count.
	cmax []float64

	sdTheta, sdB, sdLogA float64
}

func newObjective(d *Dataset, opts FitOptions) *objective {
	o := &objective{
		model:   opts.Model,
		rows:    mapRows(d, d.Train),
		nUsers:  len(d.Users),
		nItems:  len(d.Items),
		sdTheta: opts.priorThetaSD(),
		sdB:     opts.priorBSD(),
		sdLogA:  opts.priorLogASD(),
	}
	if o.model == Model3PL {
		o.cmax = make([]float64, o.nItems)
		for i, it := range d.Items {
			oc := it.OptionCount
			if oc <= 0 {
				oc = defaultOptionCount
			}
			o.cmax[i] = 1 / float64(oc)
		}
	}
	return o
}

func mapRows(d *Dataset, rows []Row) []obsRow {
	out := make([]obsRow, 0, len(rows))
	for _, r := range rows {
		u, okU := d.UserIndex(r.UserID)
		i, okI := d.ItemIndex(r.QuestionID)
		if !okU || !okI {
			continue
		}
		y := 0.0
		if r.Correct {
			y = 1.0
		}
		out = append(out, obsRow{u: u, i: i, y: y})
	}
	return out
}

func (o *objective) dim() int {
	n := o.nUsers + 2*o.nItems
	if o.model == Model3PL {
		n += o.nItems
	}
	return n
}

// initial builds the starting vector: seeded normal draws for theta,
// warm-started or empirical-logit difficulty, discrimination near 1
// and (3PL) guessing at half its cap.
func (o *objective) initial(d *Dataset, opts FitOptions) []float64 {
	x := make([]float64, o.dim())
	rng := rand.New(rand.NewSource(opts.Seed))
	for u := 0; u < o.nUsers; u++ {
		x[u] = rng.NormFloat64()
	}

	correct := make([]int, o.nItems)
	total := make([]int, o.nItems)
	for _, r := range o.rows {
		total[r.i]++
		if r.y > 0 {
			correct[r.i]++
		}
	}
	for i, it := range d.Items {
		if warm, ok := opts.WarmStart[it.QuestionID]; ok {
			x[o.nUsers+i] = warm
			continue
		}
		if total[i] == 0 {
			continue
		}
		pHat := float64(correct[i]) / float64(total[i])
		pHat = clamp(pHat, 0.05, 0.95)
		x[o.nUsers+i] = -logit(pHat)
	}

	rawA0 := softplusInv(1.0)
	for i := 0; i < o.nItems; i++ {
		x[o.nUsers+o.nItems+i] = rawA0
	}
	// 3PL rawC entries stay 0, i.e. c = cmax/2.
	return x
}

// eval returns the penalized negative log-likelihood at x and, when
// grad is non-nil, writes its gradient.
func (o *objective) eval(x, grad []float64) float64 {
	if grad != nil {
		for i := range grad {
			grad[i] = 0
		}
	}

	nU, nI := o.nUsers, o.nItems
	nll := 0.0
	for _, r := range o.rows {
		theta := x[r.u]
		b := x[nU+r.i]
		rawA := x[nU+nI+r.i]
		a := softplus(rawA)

		var c, dcdRaw float64
		if o.model == Model3PL {
			rawC := x[nU+2*nI+r.i]
			sc := sigmoid(rawC)
			c = o.cmax[r.i] * sc
			dcdRaw = o.cmax[r.i] * sc * (1 - sc)
		}

		s := sigmoid(a * (theta - b))
		p := clamp(c+(1-c)*s, fitProbEps, 1-fitProbEps)
		nll -= r.y*math.Log(p) + (1-r.y)*math.Log(1-p)

		if grad == nil {
			continue
		}
		dldp := -(r.y/p - (1-r.y)/(1-p))
		base := dldp * (1 - c) * s * (1 - s)
		grad[r.u] += base * a
		grad[nU+r.i] -= base * a
		grad[nU+nI+r.i] += base * (theta - b) * sigmoid(rawA)
		if o.model == Model3PL {
			grad[nU+2*nI+r.i] += dldp * (1 - s) * dcdRaw
		}
	}

	// Gaussian MAP penalties keep sparse users and items identified.
	for u := 0; u < nU; u++ {
		theta := x[u]
		nll += theta * theta / (2 * o.sdTheta * o.sdTheta)
		if grad != nil {
			grad[u] += theta / (o.sdTheta * o.sdTheta)
		}
	}
	for i := 0; i < nI; i++ {
		b := x[nU+i]
		nll += b * b / (2 * o.sdB * o.sdB)
		if grad != nil {
			grad[nU+i] += b / (o.sdB * o.sdB)
		}

		rawA := x[nU+nI+i]
		a := softplus(rawA)
		la := math.Log(a)
		nll += la * la / (2 * o.sdLogA * o.sdLogA)
		if grad != nil {
			grad[nU+nI+i] += la / (o.sdLogA * o.sdLogA) / a * sigmoid(rawA)
		}

		if o.model == Model3PL {
			rawC := x[nU+2*nI+i]
			nll += rawC * rawC / (2 * priorRawCSD * priorRawCSD)
			if grad != nil {
				grad[nU+2*nI+i] += rawC / (priorRawCSD * priorRawCSD)
			}
		}
	}
	return nll
}

// unpack maps the flat vector back to natural-scale parameters.
func (o *objective) unpack(x []float64) (theta, b, a, c []float64) {
	nU, nI := o.nUsers, o.nItems
	theta = make([]float64, nU)
	copy(theta, x[:nU])
	b = make([]float64, nI)
	copy(b, x[nU:nU+nI])
	a = make([]float64, nI)
	for i := 0; i < nI; i++ {
		a[i] = softplus(x[nU+nI+i])
	}
	c = make([]float64, nI)
	if o.model == Model3PL {
		for i := 0; i < nI; i++ {
			c[i] = o.cmax[i] * sigmoid(x[nU+2*nI+i])
		}
	}
	return theta, b, a, c
}

// standardize shifts and scales theta to mean 0, sd 1 and applies the
// compensating transform to b and a, leaving every predicted
// probability unchanged: a'*(theta'-b') == a*(theta-b).
func standardize(theta, b, a []float64) {
	if len(theta) == 0 {
		return
	}
	mean := 0.0
	for _, t := range theta {
		mean += t
	}
	mean /= float64(len(theta))

	sd := 0.0
	for _, t := range theta {
		d := t - mean
		sd += d * d
	}
	sd = math.Sqrt(sd / float64(len(theta)))
	if sd < 1e-9 {
		sd = 1
	}

	for u := range theta {
		theta[u] = (theta[u] - mean) / sd
	}
	for i := range b {
		b[i] = (b[i] - mean) / sd
	}
	for i := range a {
		a[i] *= sd
	}
}

// dataNLL is the plain data negative log-likelihood, priors excluded.
func dataNLL(rows []obsRow, theta, b, a, c []float64) (float64, int) {
	nll := 0.0
	for _, r := range rows {
		p := clamp(PCorrect(theta[r.u], a[r.i], b[r.i], c[r.i]), fitProbEps, 1-fitProbEps)
		nll -= r.y*math.Log(p) + (1-r.y)*math.Log(1-p)
	}
	return nll, len(rows)
}

// itemParams packs fitted item parameters with standard errors from
// the diagonal of the observed information, prior curvature included
// so sparse items get wide but finite intervals.
func (o *objective) itemParams(d *Dataset, theta, b, a, c []float64, opts FitOptions) []store.ItemParams {
	infoA := make([]float64, o.nItems)
	infoB := make([]float64, o.nItems)
	for i := 0; i < o.nItems; i++ {
		infoB[i] = 1 / (opts.priorBSD() * opts.priorBSD())
		sla := opts.priorLogASD()
		infoA[i] = 1 / (sla * sla * a[i] * a[i])
	}
	for _, r := range o.rows {
		s := sigmoid(a[r.i] * (theta[r.u] - b[r.i]))
		p := clamp(c[r.i]+(1-c[r.i])*s, fitProbEps, 1-fitProbEps)
		w := p * (1 - p)
		dpdz := (1 - c[r.i]) * s * (1 - s)
		db := dpdz * a[r.i]
		da := dpdz * (theta[r.u] - b[r.i])
		infoB[r.i] += db * db / w
		infoA[r.i] += da * da / w
	}

	out := make([]store.ItemParams, o.nItems)
	for i, it := range d.Items {
		out[i] = store.ItemParams{
			QuestionID: it.QuestionID,
			A:          a[i],
			B:          b[i],
			C:          c[i],
			SEA:        1 / math.Sqrt(infoA[i]),
			SEB:        1 / math.Sqrt(infoB[i]),
			NObs:       it.NObs,
		}
	}
	return out
}

func (o *objective) abilities(d *Dataset, theta, b, a, c []float64, opts FitOptions) []store.UserAbility {
	info := make([]float64, o.nUsers)
	nObs := make([]int, o.nUsers)
	prior := 1 / (opts.priorThetaSD() * opts.priorThetaSD())
	for u := range info {
		info[u] = prior
	}
	for _, r := range o.rows {
		s := sigmoid(a[r.i] * (theta[r.u] - b[r.i]))
		p := clamp(c[r.i]+(1-c[r.i])*s, fitProbEps, 1-fitProbEps)
		dt := (1 - c[r.i]) * s * (1 - s) * a[r.i]
		info[r.u] += dt * dt / (p * (1 - p))
		nObs[r.u]++
	}
	for _, r := range mapRows(d, d.Valid) {
		nObs[r.u]++
	}

	out := make([]store.UserAbility, o.nUsers)
	for u, id := range d.Users {
		out[u] = store.UserAbility{
			UserID:  id,
			Theta:   theta[u],
			ThetaSE: 1 / math.Sqrt(info[u]),
			NObs:    nObs[u],
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
