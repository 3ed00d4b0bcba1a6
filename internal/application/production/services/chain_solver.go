package services

import (
	"log/slog"
	"sort"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

// ChainSolver resolves a chosen set of recipe instantiations into production nodes.
//
// Resolution runs in rounds. A round admits every pending instantiation whose ingredients can
// all be covered by producers admitted in earlier rounds, natural resources, or the remaining
// external supply. An ingredient that earlier producers cannot fully cover is deferred while
// another unadmitted line still produces it, so in-chain producers win over declared feeds.
// Admitted nodes claim their ingredients immediately, so later candidates in the same round
// see the reduced supply.
//
// When a round admits nothing, a single line is admitted on external supply alone, preferring
// one whose products another pending line consumes. This anchors cycles fed from outside the
// chain. Resolution stops when neither step admits anything; anything still pending is
// reported as a RecipeChainError. A cycle without an external anchor can never be admitted
// and therefore ends up in that report.
//
// Producers are drawn in (batch, declaration) order, then natural resources, then external
// declarations in the order they were given.
type ChainSolver struct {
	parser    RecipeLineParser
	recipes   production.RecipeCatalog
	materials production.MaterialClassifier
	logger    *slog.Logger
}

// NewChainSolver creates a new chain solver
func NewChainSolver(
	parser RecipeLineParser,
	recipes production.RecipeCatalog,
	materials production.MaterialClassifier,
) *ChainSolver {
	return &ChainSolver{
		parser:    parser,
		recipes:   recipes,
		materials: materials,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// WithLogger returns a copy of the solver that logs resolution progress to logger
func (s *ChainSolver) WithLogger(logger *slog.Logger) *ChainSolver {
	clone := *s
	if logger != nil {
		clone.logger = logger
	}
	return &clone
}

// chainEntry is the solver's working state for one instantiation
type chainEntry struct {
	index     int
	node      *production.ProductionNode
	remaining map[string]float64
	admitted  bool
	settled   bool
}

// claim records one resolved producer/consumer pairing before links are materialised
type claim struct {
	source   string
	consumer *chainEntry
	material string
	amount   float64
}

// externalSupply tracks finite declared feeds, preserving declaration order
type externalSupply struct {
	items   []string
	amounts map[string]float64
}

// Solve parses lines, resolves every ingredient and returns the nodes ordered by batch
// number and then declaration order. Any failure aborts the whole solve.
func (s *ChainSolver) Solve(lines []string, externalInputs []production.ExternalInput) ([]*production.ProductionNode, error) {
	entries, err := s.buildEntries(lines)
	if err != nil {
		return nil, err
	}

	supply, err := newExternalSupply(externalInputs)
	if err != nil {
		return nil, err
	}

	claims, pending := s.resolve(entries, supply)
	if len(pending) > 0 {
		return nil, s.chainError(entries, pending, supply)
	}

	if err := materialize(entries, claims); err != nil {
		return nil, err
	}

	nodes := make([]*production.ProductionNode, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, e.node)
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].BatchNumber < nodes[j].BatchNumber
	})

	s.logger.Debug("recipe chain solved", "nodes", len(nodes))
	return nodes, nil
}

// buildEntries parses every line and scales catalog rates by the instance count
func (s *ChainSolver) buildEntries(lines []string) ([]*chainEntry, error) {
	entries := make([]*chainEntry, 0, len(lines))
	seen := make(map[string]bool, len(lines))

	for i, line := range lines {
		inst, err := s.parser.Parse(line)
		if err != nil {
			return nil, err
		}
		if seen[inst.Name] {
			return nil, &production.DuplicateRecipeError{Recipe: inst.Name}
		}
		seen[inst.Name] = true

		recipe, ok := s.recipes.Recipe(inst.Name)
		if !ok {
			return nil, &production.InvalidRecipeError{Recipe: inst.Name}
		}

		node := production.NewProductionNode(
			inst,
			production.Scale(recipe.Ingredients, inst.Count),
			production.Scale(recipe.Products, inst.Count),
		)
		remaining := make(map[string]float64, len(node.Products))
		for _, p := range node.Products {
			remaining[p.Item] = p.Amount
		}
		entries = append(entries, &chainEntry{
			index:     i,
			node:      node,
			remaining: remaining,
		})
	}
	return entries, nil
}

func newExternalSupply(inputs []production.ExternalInput) (*externalSupply, error) {
	supply := &externalSupply{
		items:   make([]string, 0, len(inputs)),
		amounts: make(map[string]float64, len(inputs)),
	}
	for _, in := range inputs {
		if err := in.Validate(); err != nil {
			return nil, err
		}
		if _, ok := supply.amounts[in.Item]; !ok {
			supply.items = append(supply.items, in.Item)
		}
		supply.amounts[in.Item] += in.Amount
	}
	return supply, nil
}

// resolve runs admission rounds and returns the claims made plus the entries never admitted
func (s *ChainSolver) resolve(entries []*chainEntry, supply *externalSupply) ([]claim, []*chainEntry) {
	claims := make([]claim, 0)
	producers := make([]*chainEntry, 0, len(entries))

	for round := 0; ; round++ {
		admitted := make([]*chainEntry, 0)
		for _, e := range entries {
			if e.admitted || len(s.shortfall(e, entries, producers, supply, true)) > 0 {
				continue
			}
			claims = append(claims, s.claimIngredients(e, producers, supply)...)
			e.admitted = true
			admitted = append(admitted, e)
		}

		anchored := false
		if len(admitted) == 0 {
			e := s.anchor(entries, producers, supply)
			if e == nil {
				break
			}
			claims = append(claims, s.claimIngredients(e, producers, supply)...)
			e.admitted = true
			admitted = append(admitted, e)
			anchored = true
		}

		names := make([]string, 0, len(admitted))
		for _, e := range admitted {
			e.settled = true
			names = append(names, e.node.Name())
		}
		s.logger.Debug("resolution round", "round", round, "admitted", names, "anchored", anchored)

		producers = append(producers, admitted...)
		sort.SliceStable(producers, func(i, j int) bool {
			if producers[i].node.BatchNumber != producers[j].node.BatchNumber {
				return producers[i].node.BatchNumber < producers[j].node.BatchNumber
			}
			return producers[i].index < producers[j].index
		})
	}

	pending := make([]*chainEntry, 0)
	for _, e := range entries {
		if !e.admitted {
			pending = append(pending, e)
		}
	}
	return claims, pending
}

// anchor picks the pending entry to admit on external supply once a round stalls. Entries
// whose products feed another pending entry go first, then declaration order decides.
func (s *ChainSolver) anchor(entries, producers []*chainEntry, supply *externalSupply) *chainEntry {
	var fallback *chainEntry
	for _, e := range entries {
		if e.admitted || len(s.shortfall(e, entries, producers, supply, false)) > 0 {
			continue
		}
		if feedsPending(e, entries) {
			return e
		}
		if fallback == nil {
			fallback = e
		}
	}
	return fallback
}

// feedsPending reports whether another unadmitted entry consumes something e produces
func feedsPending(e *chainEntry, entries []*chainEntry) bool {
	for _, other := range entries {
		if other == e || other.admitted {
			continue
		}
		for _, ing := range other.node.Ingredients {
			if ing.Amount > production.Epsilon && e.remaining[ing.Item] > production.Epsilon {
				return true
			}
		}
	}
	return false
}

// shortfall lists the ingredients of e that the current supply cannot cover. With deferred set,
// an ingredient that settled producers do not fully cover also counts while another unsettled
// entry still produces it.
func (s *ChainSolver) shortfall(e *chainEntry, entries, producers []*chainEntry, supply *externalSupply, deferred bool) []string {
	missing := make([]string, 0)
	for _, ing := range e.node.Ingredients {
		if ing.Amount <= production.Epsilon {
			continue
		}
		produced := 0.0
		for _, p := range producers {
			produced += p.remaining[ing.Item]
		}
		if produced+production.Epsilon >= ing.Amount {
			continue
		}
		if deferred && unsettledProducer(e, entries, ing.Item) {
			missing = append(missing, ing.Item)
			continue
		}
		if s.materials.IsNaturalResource(ing.Item) {
			continue
		}
		if produced+supply.amounts[ing.Item]+production.Epsilon < ing.Amount {
			missing = append(missing, ing.Item)
		}
	}
	return missing
}

// unsettledProducer reports whether an entry other than e, not yet usable as a producer,
// yields item
func unsettledProducer(e *chainEntry, entries []*chainEntry, item string) bool {
	for _, other := range entries {
		if other != e && !other.settled && other.remaining[item] > production.Epsilon {
			return true
		}
	}
	return false
}

// claimIngredients takes every ingredient of e from producers first, then natural resources,
// then external supply, and sets the batch number from the producers used
func (s *ChainSolver) claimIngredients(e *chainEntry, producers []*chainEntry, supply *externalSupply) []claim {
	claims := make([]claim, 0, len(e.node.Ingredients))
	batch := 0

	for _, ing := range e.node.Ingredients {
		need := ing.Amount
		for _, p := range producers {
			if need <= production.Epsilon {
				break
			}
			take := min(need, p.remaining[ing.Item])
			if take <= production.Epsilon {
				continue
			}
			p.remaining[ing.Item] -= take
			need -= take
			claims = append(claims, claim{source: p.node.Name(), consumer: e, material: ing.Item, amount: take})
			batch = max(batch, p.node.BatchNumber+1)
		}
		if need <= production.Epsilon {
			continue
		}

		if !s.materials.IsNaturalResource(ing.Item) {
			take := min(need, supply.amounts[ing.Item])
			supply.amounts[ing.Item] -= take
			need = take
		}
		claims = append(claims, claim{source: production.ExternalSource, consumer: e, material: ing.Item, amount: need})
	}

	e.node.BatchNumber = batch
	return claims
}

// chainError reports every pending entry with the materials it still lacks
func (s *ChainSolver) chainError(entries, pending []*chainEntry, supply *externalSupply) error {
	producers := make([]*chainEntry, 0, len(entries))
	for _, e := range entries {
		if e.admitted {
			producers = append(producers, e)
		}
	}

	chainErr := &production.RecipeChainError{
		Unprocessed: make([]string, 0, len(pending)),
		Missing:     make(map[string][]string, len(pending)),
	}
	for _, e := range pending {
		chainErr.Unprocessed = append(chainErr.Unprocessed, e.node.Name())
		chainErr.Missing[e.node.Name()] = s.shortfall(e, entries, producers, supply, false)
	}

	s.logger.Debug("recipe chain unresolved", "unprocessed", chainErr.Unprocessed)
	return chainErr
}

// materialize turns claims into links on both ends and derives surplus per node
func materialize(entries []*chainEntry, claims []claim) error {
	byName := make(map[string]*production.ProductionNode, len(entries))
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		byName[e.node.Name()] = e.node
		names = append(names, e.node.Name())
	}

	for _, c := range claims {
		consumer := c.consumer.node
		link := production.NewMaterialLink(c.source, consumer.Name(), c.material, c.amount)

		if c.source != production.ExternalSource {
			producer, ok := byName[c.source]
			if !ok {
				return &production.SourceNodeNotFoundError{Source: c.source, Material: c.material, Available: names}
			}
			if !producer.HasProduct(c.material) {
				return &production.ProductNotFoundError{Material: c.material, Source: c.source}
			}
			producer.Outputs = append(producer.Outputs, link)
		}
		consumer.Inputs = append(consumer.Inputs, link)
	}

	for _, e := range entries {
		node := e.node
		for _, p := range node.Products {
			surplus := p.Amount - node.ConsumedAmount(p.Item)
			if surplus > production.Epsilon {
				node.AvailableProducts = append(node.AvailableProducts, production.ItemRate{Item: p.Item, Amount: surplus})
			}
		}
		node.FullyConsumed = len(node.AvailableProducts) == 0
	}
	return nil
}
