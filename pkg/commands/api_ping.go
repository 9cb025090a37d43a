package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/county-directory/console/pkg/apiclient"
)

// APIPing lists the counties once and reports the outcome to out.
func APIPing(ctx context.Context, api *apiclient.Client, out io.Writer) error {
	start := time.Now()
	counties, err := api.Counties(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		return errors.Wrapf(err, "GET %s/counties failed after %s", api.BaseURL(), elapsed)
	}
	_, err = fmt.Fprintf(out, "%s reachable: %d counties in %s\n", api.BaseURL(), len(counties), elapsed)
	return err
}
