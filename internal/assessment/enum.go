package assessment

type Archetype string

const (
	ArchetypeGuardian Archetype = "GUARDIAN"
	ArchetypeWanderer Archetype = "WANDERER"
	ArchetypeWind     Archetype = "WIND"

	ArchetypeFire   Archetype = "FIRE"
	ArchetypeMirror Archetype = "MIRROR"
	ArchetypeMaze   Archetype = "MAZE"

	ArchetypeBuilder Archetype = "BUILDER"
	ArchetypeWarrior Archetype = "WARRIOR"
	ArchetypeShadow  Archetype = "SHADOW"
)

var archetypeLabels = map[Archetype]string{
	ArchetypeGuardian: "Guardião da Disciplina",
	ArchetypeWanderer: "Andarilho Oscilante",
	ArchetypeWind:     "Vento Errante",
	ArchetypeFire:     "Fogo Interno",
	ArchetypeMirror:   "Espelho Social",
	ArchetypeMaze:     "Labirinto Difuso",
	ArchetypeBuilder:  "Construtor Consciente",
	ArchetypeWarrior:  "Guerreiro Ansioso",
	ArchetypeShadow:   "Sombra Repetitiva",
}

func (a Archetype) IsValid() bool { _, ok := archetypeLabels[a]; return ok }
func (a Archetype) Label() string { return archetypeLabels[a] }
