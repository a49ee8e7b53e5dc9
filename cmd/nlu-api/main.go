package main

import (
	"log"

	"github.com/amoslue/what-the-food/internal/config"
	"github.com/amoslue/what-the-food/internal/llm"
	"github.com/amoslue/what-the-food/internal/menu"
	"github.com/amoslue/what-the-food/internal/nlu"
	"github.com/amoslue/what-the-food/internal/router"
)

func main() {
	config.Load()

	// NLU_STRUCTURER selects the structuring strategy for raw menu
	// text: "rules" runs the local heuristic end to end, "llm"
	// delegates structuring and prompt authorship to the hosted model.
	var (
		structurer menu.Structurer
		prompts    nlu.PromptGenerator
	)

	switch config.Get("NLU_STRUCTURER", "rules") {
	case "llm":
		config.MustHave("OPENAI_API_KEY")

		client, err := llm.NewOpenAIClient()
		if err != nil {
			log.Fatal(err)
		}

		llmStructurer := llm.NewStructurer(client)
		structurer = llmStructurer
		prompts = llmStructurer
	case "rules":
		structurer = menu.NewRuleBasedStructurer()
	default:
		log.Fatalf("unknown NLU_STRUCTURER value: %s", config.Get("NLU_STRUCTURER", "rules"))
	}

	service := nlu.NewService(structurer, prompts)
	handler := nlu.NewHandler(service)

	r := router.NewNLURouter(handler)

	port := config.Get("NLU_PORT", "8001")
	log.Printf("NLU service running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
