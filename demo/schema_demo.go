/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: schema_demo.go
Description: Beautiful demo showcasing the schema engine end to end including
inference from an in-memory table, drift detection between dataset versions,
record validation with detailed violations, high-cardinality value capping,
and structured lifecycle logging. Demonstrates the engine with real examples.
*/

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/kleascm/akaylee-schema/pkg/comparison"
	"github.com/kleascm/akaylee-schema/pkg/inference"
	"github.com/kleascm/akaylee-schema/pkg/interfaces"
	"github.com/kleascm/akaylee-schema/pkg/logging"
	"github.com/kleascm/akaylee-schema/pkg/validation"
)

func main() {
	fmt.Println("🌸 Akaylee Schema - Engine Demo 🌸")
	fmt.Println("=============================================")
	fmt.Println()

	// Demo 1: Schema Inference from an In-Memory Table
	demoInference()

	// Demo 2: Drift Detection Between Dataset Versions
	demoDriftDetection()

	// Demo 3: Record Validation with Detailed Violations
	demoValidation()

	// Demo 4: High-Cardinality Value Capping
	demoValueCapping()

	// Demo 5: Structured Lifecycle Logging
	demoLogging()

	fmt.Println("🎉 Schema Demo Complete! 🎉")
}

func column(name, storage string, values ...interfaces.Value) *interfaces.Column {
	return &interfaces.Column{Name: name, StorageType: storage, Values: values}
}

// usersTable builds the v1 users dataset used across the demos.
func usersTable() *interfaces.Table {
	return &interfaces.Table{
		Source: "users_v1",
		Columns: []*interfaces.Column{
			column("id", "int64",
				interfaces.IntValue(1), interfaces.IntValue(2), interfaces.IntValue(3)),
			column("name", "text",
				interfaces.StringValue("alice"), interfaces.StringValue("bob"), interfaces.StringValue("carol")),
			column("score", "float64",
				interfaces.FloatValue(91.5), interfaces.FloatValue(88.0), interfaces.FloatValue(73.25)),
			column("active", "bool",
				interfaces.BoolValue(true), interfaces.BoolValue(false), interfaces.BoolValue(true)),
			column("signup_date", "text",
				interfaces.StringValue("2024-01-15"), interfaces.StringValue("2024-02-03"), interfaces.StringValue("2024-03-21")),
			column("notes", "text",
				interfaces.StringValue("vip"), interfaces.Null(), interfaces.Null()),
		},
	}
}

func demoInference() {
	fmt.Println("✨ Demo 1: Schema Inference from an In-Memory Table")
	fmt.Println("---------------------------------------------------")

	engine := inference.NewEngine()

	schema, err := engine.InferSchema(usersTable())
	if err != nil {
		log.Printf("Error inferring schema: %v", err)
		return
	}

	pretty, _ := json.MarshalIndent(schema, "", "  ")
	fmt.Printf("Inferred schema for users_v1:\n%s\n\n", string(pretty))
}

func demoDriftDetection() {
	fmt.Println("🔍 Demo 2: Drift Detection Between Dataset Versions")
	fmt.Println("---------------------------------------------------")

	engine := inference.NewEngine()

	// v2 drops notes, adds email, and score degrades to free text
	v2 := &interfaces.Table{
		Source: "users_v2",
		Columns: []*interfaces.Column{
			column("id", "int64",
				interfaces.IntValue(4), interfaces.IntValue(5), interfaces.IntValue(6)),
			column("name", "text",
				interfaces.StringValue("dana"), interfaces.StringValue("eli"), interfaces.StringValue("fay")),
			column("score", "text",
				interfaces.StringValue("high"), interfaces.StringValue("low"), interfaces.StringValue("high")),
			column("active", "bool",
				interfaces.BoolValue(true), interfaces.BoolValue(true), interfaces.BoolValue(false)),
			column("signup_date", "text",
				interfaces.StringValue("2024-04-02"), interfaces.StringValue("2024-05-19"), interfaces.StringValue("2024-06-30")),
			column("email", "text",
				interfaces.StringValue("dana@example.com"), interfaces.StringValue("eli@example.com"), interfaces.StringValue("fay@example.com")),
		},
	}

	schema1, err := engine.InferSchema(usersTable())
	if err != nil {
		log.Printf("Error inferring v1 schema: %v", err)
		return
	}
	schema2, err := engine.InferSchema(v2)
	if err != nil {
		log.Printf("Error inferring v2 schema: %v", err)
		return
	}

	report, different := comparison.CompareSchemas(schema1, schema2)
	if !different {
		fmt.Println("No drift detected between versions.")
		fmt.Println()
		return
	}

	fmt.Printf("Drift detected in %d columns: %v\n", len(report), report.ColumnNames())
	pretty, _ := json.MarshalIndent(report, "", "  ")
	fmt.Printf("Diff report:\n%s\n\n", string(pretty))
}

func demoValidation() {
	fmt.Println("🛡️ Demo 3: Record Validation with Detailed Violations")
	fmt.Println("-----------------------------------------------------")

	engine := inference.NewEngine()

	schema, err := engine.InferSchema(usersTable())
	if err != nil {
		log.Printf("Error inferring schema: %v", err)
		return
	}

	// A clean record, then three progressively broken ones
	clean := interfaces.NewRecord()
	clean.Set("id", interfaces.IntValue(7))
	clean.Set("name", interfaces.StringValue("gwen"))
	clean.Set("score", interfaces.FloatValue(64.5))
	clean.Set("active", interfaces.BoolValue(false))
	clean.Set("signup_date", interfaces.StringValue("2024-07-11"))
	clean.Set("notes", interfaces.Null())

	missingKey := interfaces.NewRecord()
	missingKey.Set("id", interfaces.IntValue(8))
	missingKey.Set("name", interfaces.StringValue("hana"))
	missingKey.Set("score", interfaces.FloatValue(50.0))
	missingKey.Set("active", interfaces.BoolValue(true))
	missingKey.Set("notes", interfaces.StringValue("new"))

	wrongType := interfaces.NewRecord()
	wrongType.Set("id", interfaces.StringValue("not-a-number"))
	wrongType.Set("name", interfaces.StringValue("iris"))
	wrongType.Set("score", interfaces.FloatValue(77.0))
	wrongType.Set("active", interfaces.StringValue("maybe"))
	wrongType.Set("signup_date", interfaces.StringValue("2024-08-01"))
	wrongType.Set("notes", interfaces.Null())

	extraKey := interfaces.NewRecord()
	extraKey.Set("id", interfaces.IntValue(9))
	extraKey.Set("name", interfaces.StringValue("jo"))
	extraKey.Set("score", interfaces.FloatValue(82.0))
	extraKey.Set("active", interfaces.BoolValue(true))
	extraKey.Set("signup_date", interfaces.StringValue("2024-08-15"))
	extraKey.Set("notes", interfaces.Null())
	extraKey.Set("nickname", interfaces.StringValue("jojo"))

	records := []*interfaces.Record{clean, missingKey, wrongType, extraKey}
	for i, record := range records {
		valid, violations := validation.ValidateRecord(record, schema)
		if valid {
			fmt.Printf("Record %d: VALID\n", i+1)
			continue
		}
		fmt.Printf("Record %d: INVALID\n", i+1)
		for _, violation := range violations {
			fmt.Printf("   - %s\n", violation)
		}
	}
	fmt.Println()
}

func demoValueCapping() {
	fmt.Println("📊 Demo 4: High-Cardinality Value Capping")
	fmt.Println("-----------------------------------------")

	engine := inference.NewEngine()

	sessions := make([]interfaces.Value, 0, 150)
	for i := 0; i < 150; i++ {
		sessions = append(sessions, interfaces.StringValue(fmt.Sprintf("session-%04d", i)))
	}

	table := &interfaces.Table{
		Source:  "sessions",
		Columns: []*interfaces.Column{column("session_id", "text", sessions...)},
	}

	schema, err := engine.InferSchema(table)
	if err != nil {
		log.Printf("Error inferring schema: %v", err)
		return
	}

	col := schema.Columns[0]
	fmt.Printf("Column %q saw 150 distinct values (cap is %d)\n", col.Name, interfaces.MaxDataValues)
	fmt.Printf("Recorded dataValues: %v\n", col.DataValues)
	fmt.Printf("ValuesCapped: %v\n\n", col.ValuesCapped())
}

func demoLogging() {
	fmt.Println("📝 Demo 5: Structured Lifecycle Logging")
	fmt.Println("---------------------------------------")

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatCustom,
		OutputDir: "./demo_logs",
		MaxFiles:  3,
		Timestamp: true,
		Colors:    true,
	})
	if err != nil {
		log.Printf("Error creating logger: %v", err)
		return
	}
	defer logger.Close()

	engine := inference.NewEngine()
	table := usersTable()

	start := time.Now()
	schema, err := engine.InferSchema(table)
	if err != nil {
		log.Printf("Error inferring schema: %v", err)
		return
	}

	logger.LogInference(table.Source, len(schema.Columns), time.Since(start), map[string]interface{}{
		"rows": table.Rows(),
	})
	logger.LogComparison("users_v1", "users_v1", true, 0, nil)
	logger.LogValidation(table.Source, table.Rows(), 0, nil)

	fmt.Println("Lifecycle events logged to ./demo_logs")
	fmt.Println()
}
