package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/infra/bq"
	"github.com/javagrunt/javagrunt/pkg/utils/testutil"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

func sampleRun() *model.AdvisorRun {
	started := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	return &model.AdvisorRun{
		ID:         "20240203040506-abcd1234",
		Org:        "acme",
		Repo:       "web",
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
		Outcome:    model.RepoOutcomeDone,
		Path:       model.UpgradePathPatch,
		Branch:     "patch-upgrade-20240203040506-abcd1234",
		ClosedPRs:  []int{3, 9},
	}
}

func TestEncodeRow(t *testing.T) {
	run := sampleRun()
	schema := gt.R1(bqs.Infer(run)).NoError(t)

	descriptorProto, row, err := bq.EncodeRowForTest(schema, run.Record())
	gt.NoError(t, err)

	file := &descriptorpb.FileDescriptorProto{
		Name:        proto.String("row.proto"),
		Syntax:      proto.String("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{descriptorProto},
	}
	fd := gt.R1(protodesc.NewFile(file, nil)).NoError(t)
	msg := dynamicpb.NewMessage(fd.Messages().Get(0))
	gt.NoError(t, proto.Unmarshal(row, msg))

	fields := msg.Descriptor().Fields()
	gt.V(t, msg.Get(fields.ByName("org")).String()).Equal("acme")
	gt.V(t, msg.Get(fields.ByName("outcome")).String()).Equal("done")
	gt.V(t, msg.Get(fields.ByName("started_at")).Int()).Equal(run.StartedAt.UnixMicro())
	gt.V(t, msg.Get(fields.ByName("finished_at")).Int()).Equal(run.FinishedAt.UnixMicro())
	gt.V(t, msg.Get(fields.ByName("closed_prs")).List().Len()).Equal(2)
}

func TestEncodeRowSchemaMismatch(t *testing.T) {
	schema := bigquery.Schema{{Name: "org", Type: bigquery.IntegerFieldType}}
	_, _, err := bq.EncodeRowForTest(schema, map[string]any{"org": "acme"})
	gt.Error(t, err)
}

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()
	tblName := types.BQTableID(time.Now().Format("advisor_runs_test_20060102_150405"))
	client := gt.R1(bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)).NoError(t)

	md := gt.R1(client.GetMetadata(ctx)).NoError(t)
	gt.V(t, md).Equal(nil)

	run := sampleRun()
	schema := gt.R1(bqs.Infer(run)).NoError(t)
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{Name: tblName.String(), Schema: schema}))
	gt.NoError(t, client.Insert(ctx, schema, run.Record()))
}
