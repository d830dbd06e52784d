package assessment

// catalogue is the fixed set of behavioural tests. Answers and results are
// listed in the order the questionnaire presents them.
var catalogue = []Test{
	{
		ID:         "controle-executivo",
		Title:      "Teste de Controle Executivo",
		Archetypes: []Archetype{ArchetypeGuardian, ArchetypeWanderer, ArchetypeWind},
		Questions: []Question{
			{ID: 1, Text: "Quando surge uma tentação de adiar o hábito planejado, você:", Answers: []Answer{
				{Text: "Consigo resistir e manter o hábito", Archetype: ArchetypeGuardian},
				{Text: "Às vezes cedo, mas tento compensar depois", Archetype: ArchetypeWanderer},
				{Text: "Normalmente cedo e deixo para outro momento", Archetype: ArchetypeWind},
			}},
			{ID: 2, Text: "Durante tarefas importantes, se algo divertido surge, você:", Answers: []Answer{
				{Text: "Ignoro e continuo focado", Archetype: ArchetypeGuardian},
				{Text: "Dou uma pausa rápida e volto", Archetype: ArchetypeWanderer},
				{Text: "Desvio totalmente e esqueço a tarefa", Archetype: ArchetypeWind},
			}},
			{ID: 3, Text: "Quando sente cansaço físico ou mental, você:", Answers: []Answer{
				{Text: "Mantém a disciplina", Archetype: ArchetypeGuardian},
				{Text: "Tenta, mas diminui a intensidade", Archetype: ArchetypeWanderer},
				{Text: "Desiste completamente", Archetype: ArchetypeWind},
			}},
			{ID: 4, Text: "Se alguém te interrompe durante a execução do hábito, você:", Answers: []Answer{
				{Text: "Retoma rapidamente", Archetype: ArchetypeGuardian},
				{Text: "Leva tempo para voltar", Archetype: ArchetypeWanderer},
				{Text: "Desiste ou perde totalmente o ritmo", Archetype: ArchetypeWind},
			}},
			{ID: 5, Text: "Ao planejar seu dia, você:", Answers: []Answer{
				{Text: "Segue o cronograma fielmente", Archetype: ArchetypeGuardian},
				{Text: "Segue parcialmente", Archetype: ArchetypeWanderer},
				{Text: "Ignora o planejamento", Archetype: ArchetypeWind},
			}},
			{ID: 6, Text: "Quando enfrenta distrações internas (pensamentos, preguiça), você:", Answers: []Answer{
				{Text: "Reconhece e controla", Archetype: ArchetypeGuardian},
				{Text: "Às vezes controla, às vezes não", Archetype: ArchetypeWanderer},
				{Text: "Cede facilmente", Archetype: ArchetypeWind},
			}},
			{ID: 7, Text: "Ao lidar com tarefas difíceis, você:", Answers: []Answer{
				{Text: "Começa imediatamente", Archetype: ArchetypeGuardian},
				{Text: "Hesita, mas eventualmente começa", Archetype: ArchetypeWanderer},
				{Text: "Postergar se torna padrão", Archetype: ArchetypeWind},
			}},
			{ID: 8, Text: "Quando falha uma vez, você:", Answers: []Answer{
				{Text: "Volta ao hábito imediatamente", Archetype: ArchetypeGuardian},
				{Text: "Tenta depois de algum tempo", Archetype: ArchetypeWanderer},
				{Text: "Desiste ou procrastina semanas", Archetype: ArchetypeWind},
			}},
			{ID: 9, Text: "Em situações de pressão externa, você:", Answers: []Answer{
				{Text: "Mantém a rotina", Archetype: ArchetypeGuardian},
				{Text: "Ajusta parcialmente a execução", Archetype: ArchetypeWanderer},
				{Text: "Rompe a rotina", Archetype: ArchetypeWind},
			}},
			{ID: 10, Text: "Quando planeja metas de longo prazo, você:", Answers: []Answer{
				{Text: "Mantém foco mesmo sem supervisão", Archetype: ArchetypeGuardian},
				{Text: "Precisa de lembretes frequentes", Archetype: ArchetypeWanderer},
				{Text: "Normalmente abandona metas", Archetype: ArchetypeWind},
			}},
		},
		Results: []ResultDetail{
			{
				Archetype:        ArchetypeGuardian,
				BehaviorPattern:  "Consegue manter foco mesmo diante de distrações ou cansaço; raramente adia tarefas importantes. Tem rotina estruturada e cumpre o que planeja.",
				HabitImpact:      "Alto índice de sucesso na execução, pouco suscetível a sabotagens. Sua consistência garante progresso gradual e sustentável.",
				InterventionTips: "Para se desafiar ainda mais, defina metas maiores ou complexas, use checkpoints semanais e mantenha hábitos de automonitoramento. Pode explorar micro-adaptações para otimizar energia e foco.",
			},
			{
				Archetype:        ArchetypeWanderer,
				BehaviorPattern:  "Consegue manter hábitos parcialmente, mas cede a distrações, cansaço ou pequenas adversidades. Alterna dias de execução perfeita com dias de falha.",
				HabitImpact:      "Progresso irregular; padrões de recaída podem gerar frustração e desmotivação.",
				InterventionTips: "Use planejamento visual, micro-hábitos, lembretes externos e recompensas rápidas. Priorize consistência em vez de perfeição; identificar gatilhos de distração ajuda a reduzir falhas.",
			},
			{
				Archetype:        ArchetypeWind,
				BehaviorPattern:  "Baixo controle executivo; tende a procrastinar, ceder facilmente à tentação e abandonar metas. Falta de estrutura interna gera altos índices de autossabotagem.",
				HabitImpact:      "Dificuldade crônica em manter hábitos sem acompanhamento ou reforço externo. Há risco de abandono frequente de projetos.",
				InterventionTips: "Reduza barreiras físicas e psicológicas para o hábito, use reforço externo constante, micro-passos diários, acompanhamento próximo e auto-monitoramento com visualização de progresso.",
			},
		},
	},
	{
		ID:         "sensibilidade-recompensa",
		Title:      "Teste de Sensibilidade à Recompensa",
		Archetypes: []Archetype{ArchetypeFire, ArchetypeMirror, ArchetypeMaze},
		Questions: []Question{
			{ID: 1, Text: "Você mantém um hábito mais por:", Answers: []Answer{
				{Text: "Satisfação pessoal", Archetype: ArchetypeFire},
				{Text: "Feedback de outros", Archetype: ArchetypeMirror},
				{Text: "Difícil manter, mesmo com recompensa", Archetype: ArchetypeMaze},
			}},
			{ID: 2, Text: "Ao atingir uma meta, você prefere:", Answers: []Answer{
				{Text: "Sentir orgulho pessoal", Archetype: ArchetypeFire},
				{Text: "Receber reconhecimento", Archetype: ArchetypeMirror},
				{Text: "Não sente muita diferença", Archetype: ArchetypeMaze},
			}},
			{ID: 3, Text: "Quando a recompensa é adiada, você:", Answers: []Answer{
				{Text: "Continua firme", Archetype: ArchetypeFire},
				{Text: "Fica desmotivado, mas tenta", Archetype: ArchetypeMirror},
				{Text: "Desiste", Archetype: ArchetypeMaze},
			}},
			{ID: 4, Text: "Você gosta de desafios que testam sua disciplina:", Answers: []Answer{
				{Text: "Sim, me motivam", Archetype: ArchetypeFire},
				{Text: "Às vezes", Archetype: ArchetypeMirror},
				{Text: "Evito", Archetype: ArchetypeMaze},
			}},
			{ID: 5, Text: "Se outra pessoa elogia seu progresso, você:", Answers: []Answer{
				{Text: "Aprecia, mas não depende disso", Archetype: ArchetypeFire},
				{Text: "Fica mais motivado", Archetype: ArchetypeMirror},
				{Text: "Não faz diferença", Archetype: ArchetypeMaze},
			}},
			{ID: 6, Text: "Quando se sente cansado, você se mantém no hábito por:", Answers: []Answer{
				{Text: "Propósito interno", Archetype: ArchetypeFire},
				{Text: "Medo de falhar para outros", Archetype: ArchetypeMirror},
				{Text: "Difícil resistir", Archetype: ArchetypeMaze},
			}},
			{ID: 7, Text: "Ao planejar hábitos, você prioriza:", Answers: []Answer{
				{Text: "Benefício pessoal", Archetype: ArchetypeFire},
				{Text: "Aparência para os outros", Archetype: ArchetypeMirror},
				{Text: "Evita planejar", Archetype: ArchetypeMaze},
			}},
			{ID: 8, Text: "Você costuma iniciar hábitos por:", Answers: []Answer{
				{Text: "Autoaperfeiçoamento", Archetype: ArchetypeFire},
				{Text: "Influência social", Archetype: ArchetypeMirror},
				{Text: "Difícil iniciar", Archetype: ArchetypeMaze},
			}},
			{ID: 9, Text: "Para manter hábitos a longo prazo, você precisa de:", Answers: []Answer{
				{Text: "Auto-motivação", Archetype: ArchetypeFire},
				{Text: "Recompensa externa", Archetype: ArchetypeMirror},
				{Text: "Dificuldade constante para manter", Archetype: ArchetypeMaze},
			}},
			{ID: 10, Text: "Quando falha, você:", Answers: []Answer{
				{Text: "Reavalia e volta sozinho", Archetype: ArchetypeFire},
				{Text: "Busca ajuda ou encorajamento", Archetype: ArchetypeMirror},
				{Text: "Abandona por frustração", Archetype: ArchetypeMaze},
			}},
		},
		Results: []ResultDetail{
			{
				Archetype:        ArchetypeFire,
				BehaviorPattern:  "Altamente motivado por objetivos internos. Busca realização pessoal, sente prazer no progresso e é autossuficiente para manter hábitos sem depender de validação externa.",
				HabitImpact:      "Costuma manter consistência, mesmo quando recompensas externas estão ausentes. Resiliência alta diante de obstáculos.",
				InterventionTips: "Use metas desafiadoras e propósito claro. Incentive auto-reflexão, registro de conquistas e reforço positivo interno. Explore estratégias de autodesenvolvimento e desafios graduais.",
			},
			{
				Archetype:        ArchetypeMirror,
				BehaviorPattern:  "Motivação dependente de reconhecimento ou cobrança externa. Pode iniciar hábitos espontaneamente, mas perde foco sem feedback ou acompanhamento social.",
				HabitImpact:      "Progressos flutuantes; propenso a desistência se o ambiente não oferece incentivo.",
				InterventionTips: "Forneça feedback frequente, acompanhamento social ou mentorias. Utilize micro-recompensas externas e desafios em grupo para aumentar engajamento e responsabilidade.",
			},
			{
				Archetype:        ArchetypeMaze,
				BehaviorPattern:  "Baixa motivação geral; dificuldade em iniciar ou manter hábitos mesmo com recompensas. Tendência a procrastinar e ceder à distração.",
				HabitImpact:      "Hábitos raramente se consolidam; progresso lento ou irregular, alto risco de desistência.",
				InterventionTips: "Combine pequenas recompensas imediatas, monitoramento constante, reforço visual de progresso e micro-passos diários. Trabalhe para aumentar consciência do propósito e criar hábitos de baixo esforço inicial.",
			},
		},
	},
	{
		ID:         "autossabotagem",
		Title:      "Teste de Autossabotagem",
		Archetypes: []Archetype{ArchetypeBuilder, ArchetypeWarrior, ArchetypeShadow},
		Questions: []Question{
			{ID: 1, Text: "Quando você quer mudar algo, você:", Answers: []Answer{
				{Text: "Mantém esforço consistente", Archetype: ArchetypeBuilder},
				{Text: "Começa, mas logo desanima", Archetype: ArchetypeWarrior},
				{Text: "Frequentemente se boicota sem perceber", Archetype: ArchetypeShadow},
			}},
			{ID: 2, Text: "Suas falhas costumam ocorrer mais por:", Answers: []Answer{
				{Text: "Fatores externos pontuais", Archetype: ArchetypeBuilder},
				{Text: "Ansiedade ou medo", Archetype: ArchetypeWarrior},
				{Text: "Padrão repetitivo sem causa aparente", Archetype: ArchetypeShadow},
			}},
			{ID: 3, Text: "Quando recebe feedback, você:", Answers: []Answer{
				{Text: "Usa construtivamente", Archetype: ArchetypeBuilder},
				{Text: "Fica inseguro, mas tenta melhorar", Archetype: ArchetypeWarrior},
				{Text: "Ignora ou reage mal", Archetype: ArchetypeShadow},
			}},
			{ID: 4, Text: "Ao enfrentar sucesso, você:", Answers: []Answer{
				{Text: "Aproveita e celebra", Archetype: ArchetypeBuilder},
				{Text: "Sente desconforto ou culpa", Archetype: ArchetypeWarrior},
				{Text: "Evita ou sabota", Archetype: ArchetypeShadow},
			}},
			{ID: 5, Text: "Seus hábitos falham mais quando:", Answers: []Answer{
				{Text: "Está cansado", Archetype: ArchetypeBuilder},
				{Text: "Está ansioso ou estressado", Archetype: ArchetypeWarrior},
				{Text: "Sem motivo claro, padrão repetitivo", Archetype: ArchetypeShadow},
			}},
			{ID: 6, Text: "Você percebe algum padrão em suas recaídas?", Answers: []Answer{
				{Text: "Sim, consciente", Archetype: ArchetypeBuilder},
				{Text: "Às vezes", Archetype: ArchetypeWarrior},
				{Text: "Não, parece aleatório", Archetype: ArchetypeShadow},
			}},
			{ID: 7, Text: "Quando tenta mudar algo importante, você sente:", Answers: []Answer{
				{Text: "Confiança", Archetype: ArchetypeBuilder},
				{Text: "Medo de fracassar", Archetype: ArchetypeWarrior},
				{Text: "Resistência inconsciente", Archetype: ArchetypeShadow},
			}},
			{ID: 8, Text: "Você se permite recompensas quando atinge metas?", Answers: []Answer{
				{Text: "Sim, saudável", Archetype: ArchetypeBuilder},
				{Text: "Às vezes, com culpa", Archetype: ArchetypeWarrior},
				{Text: "Evita ou sabota recompensas", Archetype: ArchetypeShadow},
			}},
			{ID: 9, Text: "Seus hábitos passados mostram:", Answers: []Answer{
				{Text: "Evolução gradual", Archetype: ArchetypeBuilder},
				{Text: "Ciclos de tentativa e desistência", Archetype: ArchetypeWarrior},
				{Text: "Padrão repetitivo de autossabotagem", Archetype: ArchetypeShadow},
			}},
			{ID: 10, Text: "Se pudesse dar um conselho a você mesmo, seria:", Answers: []Answer{
				{Text: "“Continue tentando”", Archetype: ArchetypeBuilder},
				{Text: "“Cuidado com ansiedade e medo”", Archetype: ArchetypeWarrior},
				{Text: "“Observe seus padrões antes de agir”", Archetype: ArchetypeShadow},
			}},
		},
		Results: []ResultDetail{
			{
				Archetype:        ArchetypeBuilder,
				BehaviorPattern:  "Reconhece padrões de comportamento e falhas pontuais, reflete sobre erros e ajustes necessários. Consegue retomar hábitos após pequenas recaídas.",
				HabitImpact:      "Evolução gradual e sustentável; consciência ajuda a prevenir sabotagem repetitiva.",
				InterventionTips: "Continue auto-observação diária, journaling e reforço positivo. Estabeleça metas graduais e revisões semanais para identificar e ajustar padrões emergentes.",
			},
			{
				Archetype:        ArchetypeWarrior,
				BehaviorPattern:  "Tenta manter hábitos, mas ansiedade, autocrítica ou medo do fracasso geram sabotagem frequente. Tem força de vontade, mas o estresse interno atrapalha execução.",
				HabitImpact:      "Ciclos de tentativa e desistência; falhas aumentam a ansiedade e reforçam o medo.",
				InterventionTips: "Técnicas de gestão de ansiedade (respiração, mindfulness), micro-hábitos, reforço de conquistas pequenas e planejamento de contingência. Ajuda externa ou acompanhamento pode aumentar consistência.",
			},
			{
				Archetype:        ArchetypeShadow,
				BehaviorPattern:  "Recaídas recorrentes sem percepção clara do padrão. Há resistência inconsciente à mudança, autossabotagem e comportamentos autodestrutivos sutis.",
				HabitImpact:      "Dificuldade crônica em manter hábitos; avanços irregulares e frustração constante.",
				InterventionTips: "Registro detalhado de check-ins, análise guiada dos gatilhos de sabotagem, micro-passos diários e reforço externo estruturado. Trabalho psicanalítico ou terapêutico profundo ajuda a identificar conflitos inconscientes que bloqueiam mudança.",
			},
		},
	},
}
