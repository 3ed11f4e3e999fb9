package engine

import "math/rand"

// Motivational copy shown after marking a day. Selection goes through an
// injected *rand.Rand so tests can pin the choice.

var doneMessages = []string{
	"Orgulho de você. Um passo mais perto da aprovação. 💙",
	"Sua versão futura já está te agradecendo por isso.",
	"Mesmo nos dias difíceis, você continuou. Isso é o que importa.",
	"Cada hora de estudo é um tijolo no caminho da aprovação.",
	"Você não está só nessa jornada. Continue assim! 🔥",
	"Disciplina hoje, liberdade amanhã.",
	"A aprovação é construída um dia de cada vez, como hoje.",
	"Quem estuda com consistência chega lá. E você está provando isso.",
	"Isso não foi fácil, mas você fez. Isso faz toda a diferença.",
	"O ENEM vai te ver chegando com tudo. Parabéns pelo dia! ⭐",
	"Nós somos aquilo que fazemos repetidamente. A excelência é um hábito - Aristóteles",
	"A persistência realiza o impossível - Provérbio chinês",
	"Dificuldades fortalecem a mente, como o trabalho fortalece o corpo - Sêneca",
	"Primeiro diga a si mesmo quem você quer ser, depois faça o que precisa ser feito - Epicteto",
	"A felicidade depende de nós mesmos - Aristóteles",
	"Quem tem um porquê enfrenta qualquer como - Friedrich Nietzsche",
	"Não é a força, mas sim a constância dos bons resultados que conduz os homens à felicidade - Friedrich Nietzsche",
	"A disciplina é a ponte entre metas e realizações - Jim Rohn",
	"O sucesso é a soma de pequenos esforços repetidos dia após dia - Robert Collier",
	"A sorte favorece a mente preparada - Louis Pasteur",
	"Não explique sua filosofia. Incorpore-a - Epicteto",
	"O começo é a parte mais importante do trabalho - Platão",
	"A mente que se abre a uma nova ideia jamais volta ao tamanho original - Albert Einstein",
	"Coragem não é ausência de medo, é continuar apesar dele - Mark Twain",
	"Pequenos progressos diários levam a resultados extraordinários - Provérbio japonês",
}

var partialMessages = []string{
	"Um pouco é muito melhor do que nada. Você manteve o hábito! 💪",
	"Dias parciais também contam, o importante é não parar.",
	"Nem sempre tudo sai como planejado, e tudo bem. Você ainda foi lá.",
	"Consistência com flexibilidade. É assim que se cria um hábito de verdade.",
	"Hoje não foi 100%, mas foi comprometido. E isso importa.",
	"Mesmo reduzido, o esforço de hoje protege seu sonho.",
	"Você não quebrou o ritmo, você adaptou. Isso é maturidade.",
	"Parcial não é fracasso. É continuidade.",
	"Fazer algo em um dia difícil é um ato de coragem.",
	"Você escolheu continuar. Isso já te coloca à frente.",
	"Nem todo dia é perfeito, mas todo dia pode ter progresso.",
	"O hábito se constrói nos dias imperfeitos.",
	"Não foi o máximo, mas foi sincero. E isso conta.",
	"Constância não é rigidez. É voltar todos os dias.",
	"Você não desistiu, você ajustou. E isso é força.",
	"Pequenos passos ainda te levam para frente.",
	"Seu compromisso é maior que o seu cansaço.",
	"Hoje você fez o possível. Amanhã você faz mais.",
	"A disciplina também vive nos dias medianos.",
	"Manter o movimento é o que mantém o sonho vivo.",
}

var recoveryMessages = []string{
	"Você voltou! Isso é tudo que importava. O foguinho está salvo. 🔥",
	"A recuperação faz parte. Você não desistiu e isso diz muito.",
	"Volta por cima! O streak está de pé. Continue assim.",
	"Voltou ao ritmo. É isso que mantém o projeto vivo.",
	"Um dia fora não muda quase nada. Continuar muda tudo.",
	"Você interrompeu. Agora retomou. Simples assim.",
	"O importante é não deixar um dia virar padrão.",
	"Você voltou antes que virasse desculpa. Bom sinal.",
	"Constância não é nunca falhar. É não se afastar por muito tempo.",
	"Nada precisa ser dramático. Você só seguiu.",
	"O plano continua. E você também.",
	"Você não tentou compensar. Só retomou. Isso é equilíbrio.",
	"Um retorno tranquilo vale mais que promessas grandiosas.",
}

// pickMessage chooses the copy for a marking result. Completing a day while
// in recovery mode gets the welcome-back catalog.
func pickMessage(rng *rand.Rand, status Status, streakSaved bool) string {
	var pool []string
	switch {
	case streakSaved:
		pool = recoveryMessages
	case status == StatusPartial:
		pool = partialMessages
	case status == StatusDone:
		pool = doneMessages
	default:
		return ""
	}
	return pool[rng.Intn(len(pool))]
}
