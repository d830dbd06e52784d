package insight

type Insight struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Phrase struct {
	Title  string `json:"title"`
	Phrase string `json:"phrase"`
}

var (
	// InsufficientData is returned when there is too little history or no
	// generation service configured.
	InsufficientData = Insight{
		Title:   "Continue Registrando!",
		Message: "Com mais alguns dias de check-in, poderemos descobrir padrões e insights valiosos sobre sua jornada. Continue firme!",
	}
	// Reflection replaces any failed or malformed generation.
	Reflection = Insight{
		Title:   "Reflexão do Dia",
		Message: "Qual foi o maior aprendizado que você teve sobre si mesmo hoje? Anotar suas reflexões pode revelar padrões importantes.",
	}

	DefaultPhrase = Phrase{
		Title:  "Construa a Ponte",
		Phrase: "Cada pequena ação é um tijolo na ponte que leva você do seu estado atual para o seu estado desejado. Construa com paciência e consistência.",
	}
	FallbackPhrase = Phrase{
		Title:  "O Poder do 'Agora'",
		Phrase: "A mudança de hábito não acontece amanhã, acontece na decisão que você toma neste exato momento. Honre seu compromisso com o seu 'eu' do futuro, agindo agora.",
	}
)
