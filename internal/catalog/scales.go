package catalog

// scales is the full reference catalog. Labels and descriptions are in
// Portuguese, the language of the exported documents.
var scales = map[Key]Scale{
	Alegria: {
		Name:        "Alegria",
		ValenceBase: 7.5,
		Levels: []Level{
			{Level: 1, Label: "Alívio", Valence: 6.5, Arousal: 3.0, Desc: "Sensação de 'ufa!'", Examples: "Terminar prova", Regulation: "Respiração profunda"},
			{Level: 2, Label: "Serenidade", Valence: 7.0, Arousal: 2.5, Desc: "Paz interior", Examples: "Meditar", Regulation: "Mindfulness"},
			{Level: 3, Label: "Gratidão", Valence: 7.5, Arousal: 4.0, Desc: "Apreciar coisas boas", Examples: "Ajuda", Regulation: "Diário"},
			{Level: 4, Label: "Contentamento", Valence: 8.0, Arousal: 4.5, Desc: "Satisfação", Examples: "Projeto", Regulation: "Compartilhar"},
			{Level: 5, Label: "Prazer", Valence: 8.5, Arousal: 6.5, Desc: "Bem-estar", Examples: "Comida", Regulation: "Exercício"},
			{Level: 6, Label: "Êxtase", Valence: 9.0, Arousal: 8.0, Desc: "Imersão profunda", Examples: "Flow", Regulation: "Flow"},
			{Level: 7, Label: "Euforia", Valence: 9.5, Arousal: 9.5, Desc: "Pico máximo", Examples: "Grande conquista", Regulation: "Cautela"},
		},
	},
	Tristeza: {
		Name:        "Tristeza",
		ValenceBase: 3.0,
		Levels: []Level{
			{Level: 1, Label: "Desapontamento", Valence: 4.0, Arousal: 3.5, Desc: "Expectativas não atendidas", Examples: "Plano cancelado", Regulation: "Reestruturação"},
			{Level: 2, Label: "Decepção", Valence: 3.5, Arousal: 4.0, Desc: "Quebra de confiança", Examples: "Promessa quebrada", Regulation: "Conversar"},
			{Level: 3, Label: "Melancolia", Valence: 3.0, Arousal: 3.0, Desc: "Tristeza pensativa", Examples: "Nostalgia", Regulation: "Arte"},
			{Level: 4, Label: "Mágoa", Valence: 2.5, Arousal: 5.0, Desc: "Dor emocional", Examples: "Rejeição", Regulation: "Comunicação"},
			{Level: 5, Label: "Sofrimento", Valence: 2.0, Arousal: 6.0, Desc: "Dor profunda", Examples: "Perda", Regulation: "Ajuda profissional"},
			{Level: 6, Label: "Angústia", Valence: 1.5, Arousal: 7.0, Desc: "Tempestade interna", Examples: "Crise", Regulation: "Profissional"},
			{Level: 7, Label: "Desespero", Valence: 1.0, Arousal: 5.5, Desc: "Sem esperança", Examples: "Depressão", Regulation: "Ajuda imediata"},
		},
	},
	Raiva: {
		Name:        "Raiva",
		ValenceBase: 3.0,
		Levels: []Level{
			{Level: 1, Label: "Aversão", Valence: 4.5, Arousal: 4.0, Desc: "Repulsa leve", Examples: "Inconveniente", Regulation: "Afastamento"},
			{Level: 2, Label: "Irritação", Valence: 4.0, Arousal: 5.5, Desc: "Agitação", Examples: "Trânsito", Regulation: "Pausas"},
			{Level: 3, Label: "Ressentimento", Valence: 3.5, Arousal: 5.0, Desc: "Raiva reaquecida", Examples: "Injustiça", Regulation: "Terapia"},
			{Level: 4, Label: "Raiva", Valence: 3.0, Arousal: 7.0, Desc: "Resposta forte", Examples: "Desrespeito", Regulation: "Time-out"},
			{Level: 5, Label: "Rancor", Valence: 2.5, Arousal: 6.5, Desc: "Raiva amarga", Examples: "Traição", Regulation: "Perdão"},
			{Level: 6, Label: "Ódio", Valence: 2.0, Arousal: 7.5, Desc: "Aversão profunda", Examples: "Animosidade", Regulation: "Profissional"},
			{Level: 7, Label: "Fúria", Valence: 1.5, Arousal: 9.5, Desc: "Explosão", Examples: "Agressividade", Regulation: "Afastamento imediato"},
		},
	},
	Medo: {
		Name:        "Medo",
		ValenceBase: 3.0,
		Levels: []Level{
			{Level: 1, Label: "Nervosismo", Valence: 4.5, Arousal: 5.0, Desc: "Agitação pré-evento", Examples: "Apresentação", Regulation: "Preparação"},
			{Level: 2, Label: "Insegurança", Valence: 4.0, Arousal: 5.5, Desc: "Dúvida", Examples: "Capacidades", Regulation: "Autoeficácia"},
			{Level: 3, Label: "Preocupação", Valence: 3.5, Arousal: 6.0, Desc: "Pensamento repetido", Examples: "Futuro", Regulation: "Cognitiva"},
			{Level: 4, Label: "Ansiedade", Valence: 3.0, Arousal: 7.0, Desc: "Medo futuro", Examples: "Generalizada", Regulation: "TCC"},
			{Level: 5, Label: "Medo", Valence: 2.5, Arousal: 8.0, Desc: "Perigo real", Examples: "Ameaça", Regulation: "Segurança"},
			{Level: 6, Label: "Terror", Valence: 2.0, Arousal: 9.0, Desc: "Medo paralisante", Examples: "Extremo", Regulation: "Garantir segurança"},
			{Level: 7, Label: "Pânico", Valence: 1.0, Arousal: 10.0, Desc: "Onda avassaladora", Examples: "Ataque", Regulation: "Grounding"},
		},
	},
	Surpresa: {
		Name:        "Surpresa",
		ValenceBase: 5.0,
		Levels: []Level{
			{Level: 1, Label: "Surpresa", Valence: 5.0, Arousal: 5.5, Desc: "Reação instantânea", Examples: "Inesperado", Regulation: "Avaliar"},
			{Level: 2, Label: "Curiosidade", Valence: 6.5, Arousal: 6.0, Desc: "Desejo de saber", Examples: "Descoberta", Regulation: "Explorar"},
			{Level: 3, Label: "Fascínio", Valence: 7.0, Arousal: 6.5, Desc: "Atenção capturada", Examples: "Impressionante", Regulation: "Imersão"},
			{Level: 4, Label: "Admiração", Valence: 7.5, Arousal: 6.0, Desc: "Algo grandioso", Examples: "Arte", Regulation: "Contemplação"},
			{Level: 5, Label: "Assombro", Valence: 8.0, Arousal: 7.0, Desc: "Surpresa positiva", Examples: "Transcendente", Regulation: "Integração"},
			{Level: 6, Label: "Pasmo", Valence: 5.0, Arousal: 8.0, Desc: "Evento chocante", Examples: "Choque", Regulation: "Processar"},
			{Level: 7, Label: "Espanto", Valence: 5.0, Arousal: 9.0, Desc: "Reação máxima", Examples: "Extraordinário", Regulation: "Verificar"},
		},
	},
	Nojo: {
		Name:        "Nojo",
		ValenceBase: 3.0,
		Levels: []Level{
			{Level: 1, Label: "Desprezo", Valence: 4.0, Arousal: 4.5, Desc: "Nojo social", Examples: "Antiético", Regulation: "Limites"},
			{Level: 2, Label: "Desgosto", Valence: 3.5, Arousal: 5.0, Desc: "Ofende sentidos", Examples: "Comida", Regulation: "Afastamento"},
			{Level: 3, Label: "Repulsa", Valence: 3.0, Arousal: 6.5, Desc: "Vontade forte", Examples: "Contaminação", Regulation: "Afastar"},
			{Level: 4, Label: "Indignação", Valence: 2.5, Arousal: 7.0, Desc: "Nojo + raiva", Examples: "Injustiça", Regulation: "Ação"},
			{Level: 5, Label: "Aversão", Valence: 2.0, Arousal: 8.0, Desc: "Nojo máximo", Examples: "Náusea", Regulation: "Remover"},
		},
	},
}
