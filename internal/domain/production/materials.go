package production

// NaturalResources lists materials that are extracted directly and need no producing recipe.
//
// Source: resource nodes, wells and extractors available in the base game
var NaturalResources = []string{
	"Desc_OreIron_C",
	"Desc_OreCopper_C",
	"Desc_Stone_C",
	"Desc_Coal_C",
	"Desc_OreGold_C",
	"Desc_RawQuartz_C",
	"Desc_Sulfur_C",
	"Desc_OreBauxite_C",
	"Desc_OreUranium_C",
	"Desc_SAM_C",
	"Desc_Water_C",
	"Desc_LiquidOil_C",
	"Desc_NitrogenGas_C",
}

// Fluids lists materials carried by pipes instead of belts
var Fluids = []string{
	"Desc_Water_C",
	"Desc_LiquidOil_C",
	"Desc_HeavyOilResidue_C",
	"Desc_LiquidFuel_C",
	"Desc_LiquidTurboFuel_C",
	"Desc_LiquidBiofuel_C",
	"Desc_AluminaSolution_C",
	"Desc_SulfuricAcid_C",
	"Desc_NitricAcid_C",
	"Desc_NitrogenGas_C",
	"Desc_DissolvedSilica_C",
	"Desc_RocketFuel_C",
	"Desc_IonizedFuel_C",
	"Desc_QuantumEnergy_C",
	"Desc_DarkEnergy_C",
}

// MaterialClass tells whether a material travels on belts or pipes
type MaterialClass string

const (
	ClassSolid MaterialClass = "solid"
	ClassFluid MaterialClass = "fluid"
)

// MaterialClassifier answers static membership questions about materials
type MaterialClassifier interface {
	IsFluid(material string) bool
	IsNaturalResource(material string) bool
}

// MaterialTable is a MaterialClassifier backed by membership sets
type MaterialTable struct {
	natural map[string]struct{}
	fluids  map[string]struct{}
}

// NewMaterialTable creates a table from explicit membership lists
func NewMaterialTable(naturalResources, fluids []string) *MaterialTable {
	t := &MaterialTable{
		natural: make(map[string]struct{}, len(naturalResources)),
		fluids:  make(map[string]struct{}, len(fluids)),
	}
	for _, m := range naturalResources {
		t.natural[m] = struct{}{}
	}
	for _, m := range fluids {
		t.fluids[m] = struct{}{}
	}
	return t
}

// DefaultMaterialTable returns the built-in tables, optionally extended with extra members
func DefaultMaterialTable(extraNatural, extraFluids []string) *MaterialTable {
	natural := append(append([]string{}, NaturalResources...), extraNatural...)
	fluids := append(append([]string{}, Fluids...), extraFluids...)
	return NewMaterialTable(natural, fluids)
}

// IsFluid returns true if the material is carried by pipes
func (t *MaterialTable) IsFluid(material string) bool {
	_, ok := t.fluids[material]
	return ok
}

// IsNaturalResource returns true if the material is extracted with no recipe
func (t *MaterialTable) IsNaturalResource(material string) bool {
	_, ok := t.natural[material]
	return ok
}

// ClassOf returns the conveyance class of a material according to c
func ClassOf(c MaterialClassifier, material string) MaterialClass {
	if c.IsFluid(material) {
		return ClassFluid
	}
	return ClassSolid
}
