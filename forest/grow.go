package forest

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/viggieG/ID3-Random-Forest/dataset"
	"github.com/viggieG/ID3-Random-Forest/tree"
)

/*
PruneSource tells a Grower which examples to prune every tree against.
*/
type PruneSource int

const (
	// PruneOnSample prunes every tree against the bootstrap sample it was
	// grown from.
	PruneOnSample PruneSource = iota
	// PruneOnValidation prunes every tree against a held-out validation set.
	PruneOnValidation
)

func (ps PruneSource) String() string {
	switch ps {
	case PruneOnSample:
		return "sample"
	case PruneOnValidation:
		return "validation"
	}
	return fmt.Sprintf("PruneSource(%d)", int(ps))
}

// ParsePruneSource returns the PruneSource named by s.
func ParsePruneSource(s string) (PruneSource, error) {
	switch s {
	case "", "sample":
		return PruneOnSample, nil
	case "validation":
		return PruneOnValidation, nil
	}
	return PruneOnSample, fmt.Errorf("%w: unknown prune source %q", dataset.ErrInvalidInput, s)
}

/*
Grower grows random forests.
*/
type Grower struct {
	// NumTrees is the number of trees to grow.
	NumTrees int
	// MaxFeatures is the number of attributes each tree is grown on. Zero
	// or less means all of them.
	MaxFeatures int
	// MaxDepth is recorded on the forest but not enforced.
	MaxDepth int
	// Workers limits the number of trees grown concurrently. Zero or less
	// means no limit.
	Workers int
	// PruneOn selects the examples every tree is pruned against.
	PruneOn PruneSource
	// Builder grows every tree. If nil, tree.NewBuilder() is used.
	Builder *tree.Builder
	Logger  *slog.Logger
}

/*
Grow takes a context, a training dataset, an optional validation dataset and
a source of randomness and returns a forest grown from the training examples.

The training examples are balanced once (see Balance). Then every tree is
grown from a bootstrap sample of the balanced examples projected onto a
random selection of MaxFeatures attributes and pruned against that same
sample, or against the validation examples if PruneOn is PruneOnValidation.

A seed is drawn from r for every tree before any is grown, so the result
only depends on r whatever the number of workers.
*/
func (g *Grower) Grow(ctx context.Context, training, validation *dataset.Dataset, r *rand.Rand) (*Forest, error) {
	if g.NumTrees <= 0 {
		return nil, fmt.Errorf("%w: number of trees must be positive, got %d", dataset.ErrInvalidInput, g.NumTrees)
	}
	if err := training.Validate(); err != nil {
		return nil, fmt.Errorf("validating training set: %w", err)
	}
	if n := len(training.Schema.Attributes); g.MaxFeatures > n {
		return nil, fmt.Errorf("%w: cannot select %d features out of %d", dataset.ErrInvalidInput, g.MaxFeatures, n)
	}
	var pruneSet []dataset.Example
	if g.PruneOn == PruneOnValidation {
		if validation == nil {
			return nil, fmt.Errorf("%w: pruning on validation requires a validation set", dataset.ErrInvalidInput)
		}
		pruneSet = validation.Examples
	}
	builder := g.Builder
	if builder == nil {
		builder = tree.NewBuilder()
	}
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	balanced := training.WithExamples(Balance(training.Examples))
	logger.Debug("balanced training set", "examples", training.Count(), "balanced", balanced.Count())

	seeds := make([]int64, g.NumTrees)
	for i := range seeds {
		seeds[i] = r.Int63()
	}
	members := make([]*Member, g.NumTrees)
	eg, ctx := errgroup.WithContext(ctx)
	if g.Workers > 0 {
		eg.SetLimit(g.Workers)
	}
	for i, seed := range seeds {
		i, seed := i, seed
		eg.Go(func() error {
			m, err := g.growMember(ctx, builder, balanced, pruneSet, rand.New(rand.NewSource(seed)))
			if err != nil {
				return fmt.Errorf("growing tree %d: %w", i, err)
			}
			logger.Debug("grew tree", "tree", i, "features", m.Features, "nodes", m.Tree.Size(), "depth", m.Tree.Depth())
			members[i] = m
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &Forest{Members: members, MaxDepth: g.MaxDepth}, nil
}

func (g *Grower) growMember(ctx context.Context, builder *tree.Builder, balanced *dataset.Dataset, pruneSet []dataset.Example, r *rand.Rand) (*Member, error) {
	sample := balanced.WithExamples(Bootstrap(balanced.Examples, r))
	features := SelectFeatures(balanced.Schema, g.MaxFeatures, r)
	projected := sample.Project(features)
	n, err := builder.Build(ctx, projected)
	if err != nil {
		return nil, err
	}
	if g.PruneOn == PruneOnSample {
		pruneSet = projected.Examples
	}
	return &Member{Tree: tree.Prune(n, pruneSet), Features: features}, nil
}

/*
TrainForest takes a context, a dataset, the number of trees, the number of
features per tree, a depth hint and a source of randomness. It shuffles the
examples with r and splits them into training (half), validation (a quarter)
and test (the rest) sets, grows a forest on the training set and returns its
accuracy on the test set together with the forest.
*/
func TrainForest(ctx context.Context, d *dataset.Dataset, numTrees, maxFeatures, maxDepth int, r *rand.Rand) (float64, *Forest, error) {
	g := &Grower{NumTrees: numTrees, MaxFeatures: maxFeatures, MaxDepth: maxDepth}
	return g.Train(ctx, d, r)
}

// Fractions of the examples Train uses for training and validation. The
// rest is used for testing.
const (
	TrainingFraction   = 0.5
	ValidationFraction = 0.25
)

/*
Train is TrainForest with the settings of the Grower: it splits the examples
shuffled with r into training, validation and test sets, grows a forest on
the training set (pruning on the validation set if PruneOn says so) and
returns the forest with its accuracy on the test set.
*/
func (g *Grower) Train(ctx context.Context, d *dataset.Dataset, r *rand.Rand) (float64, *Forest, error) {
	if err := d.Validate(); err != nil {
		return 0, nil, err
	}
	parts := dataset.Split(d.Examples, r, TrainingFraction, ValidationFraction)
	f, err := g.Grow(ctx, d.WithExamples(parts[0]), d.WithExamples(parts[1]), r)
	if err != nil {
		return 0, nil, err
	}
	return f.Accuracy(parts[2]), f, nil
}
