package estimatesvc

import (
	"fmt"
	logger "log"
	"os"
	"sync"

	"github.com/OpenStorefrontTools/deliverydate/business/delivery"
	"github.com/nats-io/nats.go"
)

//StartService brings up the estimate web service. Exits on shutdown signal.
//natsConn may be nil, in which case estimate events are not published.
func StartService(log *logger.Logger,
	httpPort int,
	natsConn *nats.Conn,
	estimateEventSubject string,
	shutdownSignal chan os.Signal) error {

	calendar, err := delivery.MakeCalendar()
	if err != nil {
		return fmt.Errorf("building delivery calendar: %w", err)
	}
	publisher := makeEstimateEventPublisher(log, natsConn, estimateEventSubject)

	wg := sync.WaitGroup{}
	webServiceShutdown := make(chan bool, 1)
	go runWebService(log, &wg, calendar, publisher, httpPort, webServiceShutdown)

	<-shutdownSignal
	log.Printf("Exiting on shutdown signal, shutting down web service")
	webServiceShutdown <- true
	wg.Wait()
	log.Printf("Web service shut down, exiting estimate service")
	return nil
}
