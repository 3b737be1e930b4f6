package storage

import (
	"testing"
	"time"

	"anonchat/domain"

	"github.com/stretchr/testify/require"
)

func Test_LatestSenders_Newest_First_Distinct(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	snapshot := []domain.Message{
		{Sender: domain.Sender{DisplayName: "Ana"}, CreatedAt: now},
		{Sender: domain.Sender{DisplayName: "Leo"}, CreatedAt: now.Add(time.Second)},
		{Sender: domain.Sender{DisplayName: "Ana"}, CreatedAt: now.Add(2 * time.Second)},
		{Sender: domain.Sender{DisplayName: "Mia"}, CreatedAt: now.Add(3 * time.Second)},
	}

	req.Equal([]string{"Mia", "Ana", "Leo"}, LatestSenders(snapshot))
}

func Test_LatestSenders_Empty_Snapshot(t *testing.T) {
	require.Empty(t, LatestSenders(nil))
}
