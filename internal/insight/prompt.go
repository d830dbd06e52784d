package insight

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/menteviva-api/internal/checkin"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

const insightPromptTemplate = `
Você é um coach de PNL e especialista em comportamento humano chamado "Mente Viva AI".
Analise os seguintes dados de check-in de um usuário sobre seus hábitos na última semana e forneça um insight conciso e acionável.
Seja empático, encorajador e direto.
Identifique um padrão principal (ex: dificuldade em um período específico, tipo de sabotagem recorrente, ou correlação entre motivação e sucesso).
Formate sua resposta como um objeto JSON com "title" e "message".
O "title" deve ser uma pergunta ou uma afirmação curta e impactante.
O "message" deve ser um parágrafo curto (2-3 frases) explicando o padrão e sugerindo uma pequena ação ou reflexão.

Dados dos últimos 7 check-ins:
%s

Exemplo de saída:
{
  "title": "As tardes de terça-feira são seu maior desafio?",
  "message": "Notei que nas últimas terças-feiras à tarde você teve mais dificuldade em cumprir seu hábito. Que tal agendar uma pequena pausa de 5 minutos antes de começar, para recarregar as energias e ajustar seu foco?"
}
`

const phrasePrompt = `
Você é um coach de hábitos chamado "Mente Viva AI". Sua personalidade é de um amigo inteligente, engraçado e um pouco nerd sobre neurociência.
Crie uma reflexão curta, amigável e espirituosa sobre criar hábitos.
Use uma analogia simples e divertida, talvez até um pouco boba, baseada em neurociência, mas explicada de forma que qualquer um entenda. Evite jargões complexos e clichês motivacionais.
O objetivo é fazer a pessoa sorrir e se sentir mais leve sobre o processo de mudança.
Formate sua resposta como um objeto JSON com "title" e "phrase".
O "title" deve ser curto, divertido e curioso.
A "phrase" deve ter no máximo 3 frases.

Exemplo de saída 1:
{
  "title": "Seu Cérebro é um Filhotinho",
  "phrase": "Pense no seu novo hábito como ensinar um filhote a sentar. No começo ele vai se distrair, mas com repetição e um 'biscoito' (uma pequena recompensa), ele cria um novo truque. Seja paciente com seu filhotinho cerebral!"
}
Exemplo de saída 2:
{
  "title": "O GPS dos Neurônios",
  "phrase": "Cada vez que você repete um hábito, é como asfaltar uma estradinha de terra no seu cérebro. No início é difícil, mas logo vira uma autoestrada lisa onde seus neurônios dirigem no piloto automático. Apenas continue pavimentando!"
}
`

// BuildInsightPrompt renders the coach prompt for the given window of check-ins.
func BuildInsightPrompt(checkins []checkin.Checkin) string {
	lines := make([]string, 0, len(checkins))
	for _, c := range checkins {
		lines = append(lines, fmt.Sprintf(
			`- Data: %s, Status: %s, Dificuldade: %s, Sabotagem: %s, Motivação: %s, Energia: %s, Aprendizado: "%s"`,
			c.CheckinDate.In(util.Location()).Format("02/01/2006"),
			c.ExecutionStatus.Label(), c.DifficultyMoment.Label(), c.SabotageType.Label(),
			c.MotivationType.Label(), c.EnergyLevel.Label(),
			c.Learnings,
		))
	}
	return fmt.Sprintf(insightPromptTemplate, strings.Join(lines, "\n"))
}
