package production

// Epsilon absorbs floating-point noise when comparing per-minute amounts
const Epsilon = 1e-9

// ItemRate is an amount of a material per minute
type ItemRate struct {
	Item   string  `yaml:"item" json:"item" validate:"required"`
	Amount float64 `yaml:"amount" json:"amount" validate:"gt=0"`
}

// ProductionNode is a fully resolved instantiation with its material links and floor.
//
// Ingredients and Products are the catalog rates scaled by Recipe.Count. Inputs are links
// whose sink is this node, Outputs are links whose source is this node. AvailableProducts
// holds whatever was not claimed by a consumer.
type ProductionNode struct {
	Recipe            RecipeInstantiation
	Ingredients       []ItemRate
	Products          []ItemRate
	Inputs            []MaterialLink
	Outputs           []MaterialLink
	AvailableProducts []ItemRate
	FullyConsumed     bool
	BatchNumber       int
}

// NewProductionNode creates a bare node with no links
func NewProductionNode(recipe RecipeInstantiation, ingredients, products []ItemRate) *ProductionNode {
	return &ProductionNode{
		Recipe:            recipe,
		Ingredients:       ingredients,
		Products:          products,
		Inputs:            make([]MaterialLink, 0),
		Outputs:           make([]MaterialLink, 0),
		AvailableProducts: make([]ItemRate, 0),
		FullyConsumed:     false,
		BatchNumber:       0,
	}
}

// Name returns the recipe name identifying this node in links
func (n *ProductionNode) Name() string {
	return n.Recipe.Name
}

// ProducedAmount returns the total amount of material this node yields
func (n *ProductionNode) ProducedAmount(material string) float64 {
	return sumRates(n.Products, material)
}

// HasProduct returns true if the node yields material at all
func (n *ProductionNode) HasProduct(material string) bool {
	for _, p := range n.Products {
		if p.Item == material {
			return true
		}
	}
	return false
}

// ConsumedAmount returns how much of material downstream consumers claimed from this node
func (n *ProductionNode) ConsumedAmount(material string) float64 {
	return sumLinks(n.Outputs, material)
}

// SuppliedAmount returns how much of material flows into this node
func (n *ProductionNode) SuppliedAmount(material string) float64 {
	return sumLinks(n.Inputs, material)
}

// SurplusAmount returns the unclaimed amount of material
func (n *ProductionNode) SurplusAmount(material string) float64 {
	return sumRates(n.AvailableProducts, material)
}

// SurplusLinks returns one link with an empty sink per unclaimed product
func (n *ProductionNode) SurplusLinks() []MaterialLink {
	links := make([]MaterialLink, 0, len(n.AvailableProducts))
	for _, p := range n.AvailableProducts {
		links = append(links, NewMaterialLink(n.Name(), SurplusSink, p.Item, p.Amount))
	}
	return links
}

// ProducerNames returns the distinct recipe names feeding this node, in input order
func (n *ProductionNode) ProducerNames() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, in := range n.Inputs {
		if in.IsExternal() || seen[in.Source] {
			continue
		}
		seen[in.Source] = true
		names = append(names, in.Source)
	}
	return names
}

func sumRates(rates []ItemRate, material string) float64 {
	total := 0.0
	for _, r := range rates {
		if r.Item == material {
			total += r.Amount
		}
	}
	return total
}

func sumLinks(links []MaterialLink, material string) float64 {
	total := 0.0
	for _, l := range links {
		if l.Material == material {
			total += l.Amount
		}
	}
	return total
}
