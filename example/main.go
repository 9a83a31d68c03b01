package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/soapywu/pbxproj/pbxproj"
)

func main() {
	projectPath := "project.pbxproj"
	content, err := os.ReadFile(projectPath)
	if err != nil {
		log.Fatal(err)
	}

	doc, err := pbxproj.Parse(string(content))
	if err != nil {
		log.Fatal(err)
	}

	dumpToFile := func(name string, v interface{}) {
		file, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()

		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			log.Fatal(err)
		}
	}

	dumpToFile("OriginalProject.json", doc)

	out, err := pbxproj.AddPackages(doc, []pbxproj.ExternalPackage{
		{
			RepositoryURL: "https://github.com/firebase/firebase-ios-sdk.git",
			Version:       "10.0.0",
			Products:      []string{"FirebaseAuth", "FirebaseFirestore"},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	modified, err := pbxproj.Parse(out)
	if err != nil {
		log.Fatal(err)
	}
	dumpToFile("ModifiedProject.json", modified)

	if err := os.WriteFile("new"+projectPath, []byte(out), 0644); err != nil {
		log.Fatal(err)
	}
}
