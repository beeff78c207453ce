package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
)

// recordRun exports run to BigQuery. It is a no-op when BigQuery is not configured.
func (x *UseCase) recordRun(ctx context.Context, run *model.AdvisorRun) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	schema, err := createOrUpdateBigQueryTable(ctx, bq, run)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, run.Record()); err != nil {
		return goerr.Wrap(err, "failed to insert advisor run", goerr.V("run_id", run.ID))
	}
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, run *model.AdvisorRun) (bigquery.Schema, error) {
	schema, err := bqs.Infer(run)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer advisor run schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
