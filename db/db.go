package db

import (
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "nwcread-metadata"

type SongMetadata struct {
	Title    string
	Author   string
	Lyricist string
	Staves   int
}

func newClient() *dynamodb.DynamoDB {
	endpoint := os.Getenv("NWCREAD_DB_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8000"
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(sess)
}

func GetSongMetadatas(filenames []string) map[string]SongMetadata {
	if len(filenames) > 10 {
		panic("Not supposed to pass in more than 10 filenames!")
	}

	res := make(map[string]SongMetadata)
	if len(filenames) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	client := newClient()
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[tableName] {
		var s SongMetadata
		if v["Staves"] != nil && v["Staves"].N != nil {
			staves, _ := strconv.Atoi(*v["Staves"].N)
			s.Staves = staves
		}
		if v["Title"] != nil && v["Title"].S != nil {
			s.Title = *v["Title"].S
		}
		if v["Author"] != nil && v["Author"].S != nil {
			s.Author = *v["Author"].S
		}
		if v["Lyricist"] != nil && v["Lyricist"].S != nil {
			s.Lyricist = *v["Lyricist"].S
		}
		res[*v["PK"].S] = s
	}

	return res
}

func PutSongMetadata(filename string, m SongMetadata) {
	client := newClient()
	item := map[string]*dynamodb.AttributeValue{
		"PK":     {S: aws.String(filename)},
		"Title":  {S: aws.String(m.Title)},
		"Author": {S: aws.String(m.Author)},
		"Staves": {N: aws.String(strconv.Itoa(m.Staves))},
	}
	if m.Lyricist != "" {
		item["Lyricist"] = &dynamodb.AttributeValue{S: aws.String(m.Lyricist)}
	}
	input := &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      item,
	}
	if _, err := client.PutItem(input); err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}
