package services

import (
	"fmt"
	"strings"

	"tripflow/internal/models/plan_models"
)

// The schema text mirrors plan_models exactly. The downstream parser does no
// cleanup beyond trimming, so the instruction carries all the strictness:
// JSON object only, closed enums spelled out, BD-09 coordinates mandatory.

const planSchemaTemplate = `{
  "title": "string (title of the trip plan, e.g. '5-Day Tokyo Food & Anime Tour')",
  "destinations": ["string (city or region covered by the plan)"],
  "budget": {
    "total": "number (total estimated budget)",
    "breakdown": [
      {
        "category": "string (MUST be one of %s)",
        "amount": "number (estimated amount for the category)"
      }
    ]
  },
  "days": [
    {
      "day": "number (day index, starting at 1)",
      "theme": "string (theme of the day)",
      "activities": [
        {
          "time": "string (activity time, format 'HH:MM', e.g. '09:00')",
          "type": "string (MUST be one of %s)",
          "name": "string (name of the activity or place)",
          "description": "string (short description, 1-2 sentences)",
          "location": {
            "lat": "number (required, Baidu BD-09 latitude)",
            "lng": "number (required, Baidu BD-09 longitude)"
          },
          "details": {
            "address": "string (optional, full address)",
            "openingHours": "string (optional, e.g. '10:00 - 20:00')",
            "ticketPrice": "string (optional, e.g. '500 JPY')"
          }
        }
      ]
    }
  ]
}`

const placeDetailsSchema = `{
  "description": "string (short description of the place, 1-2 sentences)",
  "location": {
    "lat": "number (required, Baidu BD-09 latitude)",
    "lng": "number (required, Baidu BD-09 longitude)"
  },
  "details": {
    "address": "string (required, full address)",
    "openingHours": "string (optional, opening hours)",
    "ticketPrice": "string (optional, ticket price or average spend)"
  }
}`

// BuildPlanPrompt turns the raw user request into the full generation
// instruction. Pure and total: any input string yields an instruction that
// embeds it verbatim together with the complete schema.
func BuildPlanPrompt(userText string) string {
	var b strings.Builder

	b.WriteString("You are a professional AI travel planning assistant. ")
	b.WriteString("Create a detailed travel plan for the user's request.\n\n")
	fmt.Fprintf(&b, "The user's request is: %q\n\n", userText)

	b.WriteString("Your task is to return a complete travel plan STRICTLY in the JSON format below.\n")
	b.WriteString("Return the JSON object only: no other text, no explanation, no preamble, no closing remarks, ")
	b.WriteString("and no markdown fencing (such as ```json ... ```).\n")
	b.WriteString("The reply must be a single string that parses directly as JSON.\n\n")

	b.WriteString("JSON format definition:\n")
	b.WriteString(planSchema())
	b.WriteString("\n\n")

	b.WriteString("Make sure that:\n")
	b.WriteString("1. The reply is one complete, syntactically valid JSON object.\n")
	b.WriteString("2. Every coordinate pair (lat, lng) MUST be in the Baidu Map BD-09 coordinate system. ")
	b.WriteString("This is critical for the map features; WGS-84 or GCJ-02 coordinates are wrong.\n")
	b.WriteString("3. Budget and activity estimates are realistic.\n")

	return b.String()
}

// BuildPlaceDetailsPrompt builds the instruction for the single-place lookup.
func BuildPlaceDetailsPrompt(placeName, context string) string {
	var b strings.Builder

	b.WriteString("You are an AI geographic information assistant. ")
	b.WriteString("Look up the details of one specific place and return them as JSON.\n\n")
	fmt.Fprintf(&b, "Place name: %q\n", placeName)
	fmt.Fprintf(&b, "Place context (city/country): %q\n\n", context)

	b.WriteString("Return the place details STRICTLY in this JSON format:\n")
	b.WriteString(placeDetailsSchema)
	b.WriteString("\n\n")

	b.WriteString("Make sure that:\n")
	b.WriteString("1. The reply is the JSON object only, with no other text.\n")
	b.WriteString("2. The coordinates (lat, lng) MUST be in the Baidu Map BD-09 coordinate system.\n")
	b.WriteString("3. The 'address' field is filled in.\n")

	return b.String()
}

// planSchema renders the schema text with the enum token sets pulled from
// plan_models, so the instruction cannot drift from the contract.
func planSchema() string {
	return fmt.Sprintf(planSchemaTemplate, budgetCategoryTokens(), activityTypeTokens())
}

func activityTypeTokens() string {
	parts := make([]string, len(plan_models.ActivityTypes))
	for i, t := range plan_models.ActivityTypes {
		parts[i] = fmt.Sprintf("'%s'", t)
	}
	return strings.Join(parts, ", ")
}

func budgetCategoryTokens() string {
	parts := make([]string, len(plan_models.BudgetCategories))
	for i, c := range plan_models.BudgetCategories {
		parts[i] = fmt.Sprintf("'%s'", c)
	}
	return strings.Join(parts, ", ")
}
