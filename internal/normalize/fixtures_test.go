package normalize

import (
	"testing"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
)

const lineupFixture = `{
  "homeTeam": {
    "name": {"fullName": "Tranmere Rovers"},
    "alignment": "home",
    "formation": {"value": "4 - 4 - 2"},
    "manager": {"name": {"full": "Andy Crosby"}},
    "players": {
      "starters": [
        {
          "name": {"first": "Luke", "last": "McGee", "short": "L. McGee"},
          "playerUrn": "urn:bbc:sportsdata:football:player:p100",
          "shirtNumber": "1",
          "position": "Goalkeeper",
          "formationPlace": 1,
          "isCaptain": false
        },
        {
          "name": {"first": "Connor", "last": "Jennings", "short": "C. Jennings"},
          "playerUrn": "urn:bbc:sportsdata:football:player:p110",
          "shirtNumber": 10,
          "position": "Forward",
          "formationPlace": "10",
          "isCaptain": true,
          "cards": [
            {"type": "Yellow Card", "timeLabel": {"value": "12'"}},
            {"type": "Yellow Card", "timeLabel": {"value": "90+3'"}}
          ],
          "substitutedOff": {
            "periodId": "2",
            "timeMin": 93,
            "reason": "Tactical",
            "playerOnUrn": "urn:bbc:sportsdata:football:player:p118",
            "playerOnName": "J. Hawkes"
          }
        },
        {
          "name": {"first": "Lee", "last": "O'Connor", "short": "L. O'Connor"},
          "playerUrn": "urn:bbc:sportsdata:football:player:p104",
          "shirtNumber": 4,
          "position": "Defender"
        }
      ],
      "substitutes": [
        {
          "name": {"first": "Josh", "last": "Hawkes", "short": "J. Hawkes"},
          "playerUrn": "urn:bbc:sportsdata:football:player:p118",
          "shirtNumber": 18,
          "position": "Substitute",
          "substitutedOn": {
            "periodId": "2",
            "timeMin": 93,
            "reason": "Tactical",
            "playerOffUrn": "urn:bbc:sportsdata:football:player:p110",
            "playerOffName": "C. Jennings"
          }
        },
        {
          "name": {"first": "Joe", "last": "Murphy", "short": "J. Murphy"},
          "playerUrn": "urn:bbc:sportsdata:football:player:p121",
          "shirtNumber": 21,
          "position": "Substitute"
        }
      ]
    }
  },
  "awayTeam": {
    "name": {"fullName": "Crewe Alexandra"},
    "alignment": "away",
    "formation": {"value": "3-5-2"},
    "manager": {"name": {"full": "Lee Bell"}},
    "players": {
      "starters": [
        {
          "name": {"first": "Filip", "last": "Marschall", "short": "F. Marschall"},
          "playerUrn": "urn:bbc:sportsdata:football:player:p201",
          "shirtNumber": 1,
          "position": "Goalkeeper",
          "cards": [
            {"type": "Red Card", "timeLabel": {"value": "45+2'"}}
          ]
        }
      ],
      "substitutes": [
        {
          "name": {"first": "Tom", "last": "Booth", "short": "T. Booth"},
          "playerUrn": "urn:bbc:sportsdata:football:player:p213",
          "shirtNumber": 13,
          "position": "Substitute"
        }
      ]
    }
  },
  "officials": [
    {"firstName": "Samuel", "lastName": "Barrott", "shortFirstName": "Sam", "type": "Referee"},
    {"firstName": "Paul", "lastName": "Graham", "type": "Assistant Referee"}
  ]
}`

const matchInfoFixture = `{
  "sportDataEvent": {
    "home": {
      "fullName": "Tranmere Rovers",
      "runningScores": {"halftime": "1", "fulltime": "3"},
      "actions": [
        {
          "actionType": "goal",
          "playerName": "C. Jennings",
          "playerUrn": "urn:bbc:sportsdata:football:player:p110",
          "actions": [
            {"type": "Goal", "timeLabel": {"value": "5'"}},
            {"type": "Penalty Goal", "timeLabel": {"value": "45+1'"}}
          ]
        },
        {
          "actionType": "goal",
          "playerName": "M. Demetriou",
          "playerUrn": "urn:bbc:sportsdata:football:player:p299",
          "actions": [
            {"type": "Own Goal", "timeLabel": {"value": "77'"}}
          ]
        },
        {
          "actionType": "card",
          "playerName": "C. Jennings",
          "actions": [
            {"type": "Yellow Card", "timeLabel": {"value": "12'"}}
          ]
        }
      ]
    },
    "away": {
      "fullName": "Crewe Alexandra",
      "runningScores": {"halftime": 0, "fulltime": 1},
      "actions": [
        {
          "actionType": "goal",
          "playerName": "C. Long",
          "playerUrn": "urn:bbc:sportsdata:football:player:p209",
          "actions": [
            {"type": "Goal", "timeLabel": {"value": "60'"}}
          ]
        }
      ]
    },
    "groupedActions": [
      {
        "groupName": {"fullName": "Assists"},
        "homeTeamActions": ["Josh Hawkes (5', 45+1')"],
        "awayTeamActions": ["Mickey Demetriou (60')"]
      },
      {
        "groupName": {"fullName": "Cards"},
        "homeTeamActions": ["Connor Jennings (12')"]
      }
    ]
  }
}`

func mustDecode[T any](t *testing.T, raw string) T {
	t.Helper()
	doc, err := bbcsport.Decode[T]([]byte(raw))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return doc
}

func intPtr(v int) *int {
	return &v
}
