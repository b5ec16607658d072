package serializer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	responseTimeHeaderName = "Httpecho-Response-Time"
	requestTimeHeaderName  = "Httpecho-Request-Time"
)

// Exchange is one request and the response sent for it.
type Exchange struct {
	Request *http.Request
	// Body of the request, which has usually been consumed by the time the exchange is recorded.
	RequestBody []byte
	Response    *http.Response
	// The value of the clock when the request was received.
	RequestTime time.Time
	// The value of the clock when the response was written.
	ResponseTime time.Time
}

// NewExchange creates an exchange from a request and the HTTP/1.1 form of its response.
func NewExchange(req *http.Request, reqBody []byte, rawResponse []byte, reqTime, resTime time.Time) (Exchange, error) {
	res, err := bytesToResponse(rawResponse, req)
	if err != nil {
		return Exchange{}, err
	}
	return Exchange{
		Request:      req,
		RequestBody:  reqBody,
		Response:     res,
		RequestTime:  reqTime,
		ResponseTime: resTime,
	}, nil
}

var delim = []byte("\r\n\r\n----\r\n\r\n")

// ExchangeToBytes writes the request and response in HTTP/1.1 form, separated by a delimiter.
// The request and response times travel as extra response headers.
func ExchangeToBytes(ex Exchange) ([]byte, error) {
	buf := &bytes.Buffer{}

	if ex.Request != nil {
		if err := requestToWire(ex.Request, ex.RequestBody).Write(buf); err != nil {
			log.Warn().Err(err).Msg("Could not write request to bytes")
		}
	} else {
		log.Warn().Msg("Request not set")
	}
	buf.Write(delim)

	if ex.Response == nil {
		return nil, fmt.Errorf("Response not set")
	}
	res := ex.Response
	res.Header.Set(responseTimeHeaderName, strconv.FormatInt(ex.ResponseTime.UnixNano(), 10))
	res.Header.Set(requestTimeHeaderName, strconv.FormatInt(ex.RequestTime.UnixNano(), 10))
	err := res.Write(buf)
	// remove the extra headers just in case
	res.Header.Del(responseTimeHeaderName)
	res.Header.Del(requestTimeHeaderName)

	return buf.Bytes(), err
}

// BytesToExchange reads back an exchange written by ExchangeToBytes.
func BytesToExchange(b []byte) (Exchange, error) {
	ex := Exchange{}
	bParts := bytes.SplitN(b, delim, 2)
	if len(bParts) != 2 {
		return ex, fmt.Errorf("Exchange delimiter not found")
	}
	req, err := http.ReadRequest(bufio.NewReader(bytes.NewReader(bParts[0])))
	if err != nil {
		log.Warn().Err(err).Bytes("bytes", bParts[0]).Msg("Could not read request from stored exchange")
	} else {
		ex.Request = req
		if ex.RequestBody, err = io.ReadAll(req.Body); err != nil {
			return ex, err
		}
	}
	res, err := bytesToResponse(bParts[1], req)
	if err != nil {
		return ex, err
	}
	ex.Response = res
	resTimeInt, err := strconv.ParseInt(res.Header.Get(responseTimeHeaderName), 10, 64)
	if err != nil {
		return ex, err
	}
	reqTimeInt, err := strconv.ParseInt(res.Header.Get(requestTimeHeaderName), 10, 64)
	if err != nil {
		return ex, err
	}
	ex.ResponseTime = time.Unix(0, resTimeInt)
	ex.RequestTime = time.Unix(0, reqTimeInt)
	// delete extra headers
	res.Header.Del(responseTimeHeaderName)
	res.Header.Del(requestTimeHeaderName)
	return ex, nil
}

// requestToWire returns a copy of a server request that writes back to the form it
// arrived in: with its body, and without the User-Agent that Request.Write adds.
func requestToWire(req *http.Request, body []byte) *http.Request {
	r := req.Clone(req.Context())
	r.Body = io.NopCloser(bytes.NewReader(body))
	r.ContentLength = int64(len(body))
	r.TransferEncoding = nil
	if _, ok := r.Header["User-Agent"]; !ok {
		r.Header["User-Agent"] = []string{""}
	}
	return r
}

// bytesToResponse converts a byte slice to a http.Response.
func bytesToResponse(b []byte, req *http.Request) (*http.Response, error) {
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(b)), req)
}
